package middlewares

import (
	"crypto/subtle"
	"net/http"

	"github.com/sbilibin2017/gw-governance/internal/logger"
)

// AdminKeyHeader carries the operator key on administrative routes.
const AdminKeyHeader = "X-API-Key"

// AdminKeyMiddleware admits only requests presenting key. An empty key
// rejects every request.
func AdminKeyMiddleware(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(AdminKeyHeader)
			if key == "" || subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				logger.Log.Warnw("admin access denied", "path", r.URL.Path, "remote", IPKey(r))
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
