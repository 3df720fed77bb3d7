package middlewares

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-vacancies/internal/logger"
	"github.com/sbilibin2017/gw-vacancies/internal/models"
	"github.com/sbilibin2017/gw-vacancies/internal/services"
)

// Authenticator resolves the user behind a request.
// A nil user with a nil error means the request is anonymous.
type Authenticator interface {
	Authenticate(ctx context.Context, r *http.Request) (*models.UserDB, string, error)
}

// Identity is the authenticated caller and the raw token it presented
type Identity struct {
	User  *models.UserDB
	Token string
}

type identityKey struct{}

// WithIdentity stores an identity in the context
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the identity stored by AuthMiddleware.
// The boolean is false for anonymous requests.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok && id.User != nil
}

// AuthMiddleware authenticates every request. Anonymous requests pass through,
// rejected tokens get 403 with the rejection reason.
func AuthMiddleware(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			user, token, err := auth.Authenticate(ctx, r)
			if err != nil {
				var tokenErr *services.TokenError
				if errors.As(err, &tokenErr) {
					logger.Log.Infow("authorization failed", "reason", tokenErr.Reason)
					writeReason(w, http.StatusForbidden, tokenErr.Reason)
					return
				}
				logger.Log.Errorw("authorization failed", "err", err)
				writeReason(w, http.StatusInternalServerError, "Internal server error.")
				return
			}

			if user != nil {
				ctx = WithIdentity(ctx, Identity{User: user, Token: token})
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuthenticated rejects anonymous requests with 403
func RequireAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := IdentityFromContext(r.Context()); !ok {
			writeReason(w, http.StatusForbidden, services.ReasonAuthenticatedOnly)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeReason(w http.ResponseWriter, status int, reason string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(models.ErrorResponse{Reason: reason}); err != nil {
		logger.Log.Errorw("failed to encode error response", "err", err)
	}
}
