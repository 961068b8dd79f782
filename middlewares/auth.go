package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/estatehub/api/pkg/jwt"
)

type authSubjectKey struct{}

// RequireAuth guards owner-portal routes. It expects a Bearer token in
// the Authorization header, validates it, and stores the token subject in
// the request context.
func RequireAuth(svc *jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				unauthorized(w, "missing authentication token")
				return
			}

			claims, err := svc.Parse(token)
			if err != nil {
				if errors.Is(err, jwt.ErrExpiredToken) {
					unauthorized(w, "token expired")
					return
				}
				unauthorized(w, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), authSubjectKey{}, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AuthSubjectFromContext returns the authenticated subject set by RequireAuth.
func AuthSubjectFromContext(ctx context.Context) (string, bool) {
	sub, ok := ctx.Value(authSubjectKey{}).(string)
	return sub, ok
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(h) <= len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(h[len(prefix):]), true
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
