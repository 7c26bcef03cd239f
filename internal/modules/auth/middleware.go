package auth

import (
	"context"
	"net/http"
	"strings"
)

type principalKey struct{}

// Authenticate requires a valid Bearer token and stores the caller's
// Principal in the request context.
func Authenticate(tokens *Tokens) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				respond(w, http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
				return
			}
			p, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				respond(w, http.StatusUnauthorized, map[string]string{"message": "Invalid token"})
				return
			}
			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), *p)))
		})
	}
}

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom returns the caller set by Authenticate.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
