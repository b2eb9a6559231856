package middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-governance/internal/logger"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

type ctxKey string

const addressKey ctxKey = "address"

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetAddress(ctx context.Context, tokenString string) (string, error)
}

// AuthMiddleware rejects requests without a valid session token and stores
// the session address in the request context.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			address, err := tokener.GetAddress(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAddress(ctx, address)))
		})
	}
}

// OptionalAuthMiddleware stores the session address when a valid token is
// present and passes every request through.
func OptionalAuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			address, err := tokener.GetAddress(ctx, tokenString)
			if err != nil {
				logger.Log.Debugw("ignoring invalid optional token", "err", err)
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAddress(ctx, address)))
		})
	}
}

// WithAddress returns ctx carrying the authenticated address.
func WithAddress(ctx context.Context, address string) context.Context {
	return context.WithValue(ctx, addressKey, address)
}

// GetAddressFromContext returns the authenticated address, if any.
func GetAddressFromContext(ctx context.Context) (string, bool) {
	address, ok := ctx.Value(addressKey).(string)
	return address, ok && address != ""
}
