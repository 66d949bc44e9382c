package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"cable-billing/internal/config"
	"cable-billing/internal/domain/authz"
	"cable-billing/internal/pkg/jwtauth"
)

// AuthMiddleware resolves the bearer token into an authz.Actor stored in the request context.
// With auth disabled every request acts as the superuser.
func AuthMiddleware(cfg config.AuthConfig, logger *slog.Logger) func(http.Handler) http.Handler {
	if !cfg.Enabled {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				next.ServeHTTP(w, r.WithContext(authz.WithActor(r.Context(), authz.SuperUser())))
			})
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := actorFromRequest(r, cfg.JWTSecret, logger)
			if !ok {
				http.Error(w, `{"error":{"message":"Unauthorized"}}`, http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(authz.WithActor(r.Context(), actor)))
		})
	}
}

func actorFromRequest(r *http.Request, secret string, logger *slog.Logger) (authz.Actor, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		logger.WarnContext(r.Context(), "AuthMiddleware: Missing Authorization header")
		return authz.Anonymous(), false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		logger.WarnContext(r.Context(), "AuthMiddleware: Invalid Authorization header format")
		return authz.Anonymous(), false
	}

	actor, err := jwtauth.Parse(secret, parts[1])
	if err != nil {
		logger.WarnContext(r.Context(), "AuthMiddleware: Invalid token", slog.Any("error", err))
		return authz.Anonymous(), false
	}

	logger.DebugContext(r.Context(), "AuthMiddleware: Authenticated request",
		slog.String("role", actor.Kind.String()), slog.Int64("actorID", actor.ID))
	return actor, true
}
