package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	h "showcase/internal/delivery/http/helpers"
	"showcase/internal/domain"
)

type contextKey string

const actorKey contextKey = "actor"

// SetActor returns a context with the actor set. Used by auth middleware.
func SetActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// ActorFromContext returns the authenticated actor from the context, if present.
func ActorFromContext(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(domain.Actor)
	return actor, ok
}

// bearerToken extracts the token from the Authorization header. Returns ""
// when the header is missing or malformed.
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return ""
	}
	return strings.TrimSpace(auth[len(prefix):])
}

// RequireAuth returns a wrapper that validates the Bearer token and sets the
// actor in the request context. If the token is missing or invalid, it
// responds with 401 and does not call next.
func RequireAuth(verifier domain.TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeNotAuthenticated, "missing bearer token")
				return
			}
			actor, err := verifier.Verify(token)
			if err != nil {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeNotAuthenticated, "invalid or expired token")
				return
			}
			next(w, r.WithContext(SetActor(r.Context(), actor)))
		}
	}
}

// OptionalAuth returns a wrapper that sets the actor in the request context
// when a valid Bearer token is present, and otherwise calls next with no
// actor. Public views use this so logged-in and logged-out visitors share
// the same routes.
func OptionalAuth(verifier domain.TokenVerifier) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if token := bearerToken(r); token != "" {
				if actor, err := verifier.Verify(token); err == nil {
					r = r.WithContext(SetActor(r.Context(), actor))
				}
			}
			next(w, r)
		}
	}
}
