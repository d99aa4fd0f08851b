package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/vocabvault-backend/internal/config"
)

// CORS returns middleware for cross-origin browser access. Preflight
// requests (OPTIONS with Access-Control-Request-Method) are answered with
// 204 and never reach the handler. The request ID header is exposed to
// scripts so that the front-end can report it.
func CORS(cfg config.CORSConfig) Middleware {
	allowAll, origins := parseOrigins(cfg.AllowedOrigins)
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			_, listed := origins[origin]
			allowed := origin != "" && (allowAll || listed)
			if allowed {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Expose-Headers", RequestIDHeader)
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				if allowed {
					h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
					h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
					h.Set("Access-Control-Max-Age", maxAge)
				}
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func parseOrigins(raw string) (allowAll bool, set map[string]struct{}) {
	set = make(map[string]struct{})
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		switch o {
		case "":
		case "*":
			allowAll = true
		default:
			set[o] = struct{}{}
		}
	}
	return allowAll, set
}
