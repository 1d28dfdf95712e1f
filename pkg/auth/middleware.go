package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/GlebRadaev/worksite/internal/domain"
	"github.com/GlebRadaev/worksite/pkg/utils"
)

type ContextKey string

const ActorKey ContextKey = "actor"

// ActorFromContext returns the request actor; anonymous when the request
// passed through without the auth middleware.
func ActorFromContext(ctx context.Context) domain.Actor {
	if actor, ok := ctx.Value(ActorKey).(domain.Actor); ok {
		return actor
	}
	return domain.Actor{}
}

// AuthMiddleware rejects requests without a valid bearer token.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		jwtService := &JWTService{}
		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		actor := domain.Actor{ID: claims.UserID, Authenticated: true, IsCompany: claims.IsCompany}
		ctx := context.WithValue(r.Context(), ActorKey, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuthMiddleware attaches the actor when a valid token is present
// and lets anonymous requests through untouched. Used on read endpoints
// where visibility depends on who is asking.
func OptionalAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			token := strings.TrimPrefix(authHeader, "Bearer ")
			jwtService := &JWTService{}
			if claims, err := jwtService.ValidateToken(token); err == nil {
				actor := domain.Actor{ID: claims.UserID, Authenticated: true, IsCompany: claims.IsCompany}
				r = r.WithContext(context.WithValue(r.Context(), ActorKey, actor))
			}
		}
		next.ServeHTTP(w, r)
	})
}
