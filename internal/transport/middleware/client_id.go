package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocabvault-backend/pkg/ctxutil"
)

// ClientIDHeader identifies the browser that owns a favorites collection.
const ClientIDHeader = "X-Client-Id"

// ClientID returns middleware that stores the X-Client-Id UUID in the context.
// Requests without the header pass through anonymously; a malformed header
// is rejected with 400.
func ClientID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(ClientIDHeader)
			if raw == "" {
				next.ServeHTTP(w, r)
				return
			}

			id, err := uuid.Parse(raw)
			if err != nil || id == uuid.Nil {
				writeError(w, http.StatusBadRequest, "validation_error", "invalid "+ClientIDHeader+" header")
				return
			}

			next.ServeHTTP(w, r.WithContext(ctxutil.WithClientID(r.Context(), id)))
		})
	}
}
