package middleware

import (
	"context"
	"net/http"
	"strings"

	"authportal/token"
)

type ctxKey int

const claimsKey ctxKey = 1

// Auth gates routes behind a bearer token. A request with no token is
// rejected 401; a token that fails verification is rejected 403. Both
// rejections carry no body.
type Auth struct {
	Signer *token.Signer
}

func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authz := r.Header.Get("Authorization")
		if !strings.HasPrefix(authz, "Bearer ") {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		tok := strings.TrimPrefix(authz, "Bearer ")
		claims, err := a.Signer.Parse(tok)
		if err != nil {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetClaims returns the claims attached by RequireAuth, or nil if the
// request never passed the gate.
func GetClaims(ctx context.Context) *token.Claims {
	if v := ctx.Value(claimsKey); v != nil {
		if c, ok := v.(*token.Claims); ok {
			return c
		}
	}
	return nil
}
