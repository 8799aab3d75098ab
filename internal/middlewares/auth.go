package middlewares

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=middlewares

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	domainerrors "github.com/sbilibin2017/gw-bookmarker/internal/errors"
	"github.com/sbilibin2017/gw-bookmarker/internal/logger"
	"github.com/sbilibin2017/gw-bookmarker/internal/models"
	"github.com/sbilibin2017/gw-bookmarker/internal/response"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUsername(ctx context.Context, tokenString string) (string, error)
}

type identityKey struct{}

// Authenticate resolves the caller from a bearer token. A missing or invalid
// token leaves the request anonymous; it never rejects the request.
func Authenticate(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			username, err := tokener.GetUsername(ctx, tokenString)
			if err != nil {
				logger.Log.Infow("ignoring invalid token", "err", err)
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(ctx, models.Identity{Username: username})))
		})
	}
}

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFromContext returns the caller set by Authenticate, or nil for an
// anonymous request.
func IdentityFromContext(ctx context.Context) *models.Identity {
	identity, ok := ctx.Value(identityKey{}).(models.Identity)
	if !ok {
		return nil
	}
	return &identity
}

// CheckIdentity fails with ErrUnauthorized for an anonymous caller.
func CheckIdentity(identity *models.Identity) (models.Identity, error) {
	if identity == nil || identity.Username == "" {
		return models.Identity{}, domainerrors.ErrUnauthorized
	}
	return *identity, nil
}

// CheckOwner fails with ErrUnauthorized unless the caller is routeUsername.
// Every failure carries the same message.
func CheckOwner(identity *models.Identity, routeUsername string) error {
	caller, err := CheckIdentity(identity)
	if err != nil {
		return err
	}
	if routeUsername == "" || caller.Username != routeUsername {
		return domainerrors.ErrUnauthorized
	}
	return nil
}

// RequireIdentity answers 401 to anonymous callers.
func RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := CheckIdentity(IdentityFromContext(r.Context())); err != nil {
			response.Error(w, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireOwner answers 401 unless the caller matches the chi URL parameter
// param.
func RequireOwner(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			routeUsername := chi.URLParam(r, param)
			if err := CheckOwner(IdentityFromContext(r.Context()), routeUsername); err != nil {
				logger.Log.Infow("ownership check failed", "route_username", routeUsername)
				response.Error(w, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
