package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/satno7/superlists/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// EmailKey is the context key for storing the authenticated user's email.
const EmailKey contextKey = "email"

// GetEmail extracts the authenticated user's email from the context.
// Returns empty string for anonymous requests.
func GetEmail(ctx context.Context) string {
	email, _ := ctx.Value(EmailKey).(string)
	return email
}

// RequireAuth returns middleware that rejects requests without a valid
// session token. It extracts the token from the Authorization header,
// validates it, and adds the user's email to the request context.
func RequireAuth(jwtManager *auth.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := bearerToken(r)
			if !ok {
				http.Error(w, auth.ErrMissingSession.Error(), http.StatusUnauthorized)
				return
			}

			claims, err := jwtManager.Validate(tokenString)
			if err != nil {
				http.Error(w, auth.ErrInvalidSession.Error(), http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), EmailKey, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth returns middleware that populates the user's email when a
// valid session token is present but lets anonymous requests through.
// Endpoints like list creation behave differently for authenticated users
// (the list gets an owner) without requiring login.
func OptionalAuth(jwtManager *auth.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if tokenString, ok := bearerToken(r); ok {
				if claims, err := jwtManager.Validate(tokenString); err == nil {
					ctx := context.WithValue(r.Context(), EmailKey, claims.Email)
					r = r.WithContext(ctx)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// bearerToken pulls the token out of an "Authorization: Bearer ..." header.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}
