package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"ecodeli-dispatch/internal/apperr"
	"ecodeli-dispatch/internal/domain"
)

// Identity headers set by the upstream gateway after authentication.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

type actorKey struct{}

// WithActor returns a copy of ctx carrying a.
func WithActor(ctx context.Context, a domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, a)
}

// ActorFrom returns the actor stored by Identity.
func ActorFrom(ctx context.Context) (domain.Actor, bool) {
	a, ok := ctx.Value(actorKey{}).(domain.Actor)
	return a, ok
}

// Identity reads the caller from the identity headers. Requests with a missing
// id or an unknown role stay anonymous.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(HeaderUserID))
		role := domain.Role(strings.ToUpper(strings.TrimSpace(r.Header.Get(HeaderUserRole))))
		if id != "" && role.Valid() {
			r = r.WithContext(WithActor(r.Context(), domain.Actor{ID: id, Role: role}))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRoles rejects anonymous callers with 401 and callers without one of
// roles with 403.
func RequireRoles(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a, ok := ActorFrom(r.Context())
			if !ok {
				deny(w, http.StatusUnauthorized, apperr.CodeUnauthenticated, "authentication required")
				return
			}
			if len(roles) > 0 && !a.HasRole(roles...) {
				deny(w, http.StatusForbidden, apperr.CodeForbidden, "role not allowed")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func deny(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg, "code": code})
}
