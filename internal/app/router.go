package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/vocabvault-backend/internal/config"
	"github.com/heartmarshall/vocabvault-backend/internal/transport/middleware"
	"github.com/heartmarshall/vocabvault-backend/internal/transport/rest"
)

// routerDeps holds everything the HTTP router serves. A nil favorites
// handler means the favorites store is disabled.
type routerDeps struct {
	cfg       *config.Config
	logger    *slog.Logger
	health    *rest.HealthHandler
	lookup    *rest.LookupHandler
	favorites *rest.FavoriteHandler
	limiter   *middleware.RateLimiter
}

func newRouter(d routerDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", d.health.Live)
	mux.HandleFunc("GET /ready", d.health.Ready)
	mux.HandleFunc("GET /health", d.health.Health)

	limited := d.limiter.Limit(d.cfg.RateLimit.LookupPerMinute)
	mux.Handle("POST /api/search", limited(http.HandlerFunc(d.lookup.Search)))
	mux.Handle("GET /api/lookup", limited(http.HandlerFunc(d.lookup.Lookup)))

	if d.favorites != nil {
		mux.HandleFunc("GET /api/favorites", d.favorites.List)
		mux.HandleFunc("POST /api/favorites", d.favorites.Save)
		mux.HandleFunc("GET /api/favorites/{id}", d.favorites.Get)
		mux.HandleFunc("PUT /api/favorites/{id}/tags", d.favorites.UpdateTags)
		mux.HandleFunc("DELETE /api/favorites/{id}", d.favorites.Delete)
	} else {
		disabled := rest.Unavailable("favorites are disabled: no database configured")
		for _, pattern := range []string{
			"GET /api/favorites",
			"POST /api/favorites",
			"GET /api/favorites/{id}",
			"PUT /api/favorites/{id}/tags",
			"DELETE /api/favorites/{id}",
		} {
			mux.Handle(pattern, disabled)
		}
	}

	if dir := d.cfg.Server.StaticDir; dir != "" {
		mux.Handle("GET /", http.FileServer(http.Dir(dir)))
	}

	return middleware.Chain(
		middleware.Recovery(d.logger),
		middleware.RequestID(),
		middleware.Logger(d.logger),
		middleware.CORS(d.cfg.CORS),
		middleware.ClientID(),
	)(mux)
}
