// Package middleware provides HTTP middleware for the API server.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shopkori/assistant-platform/internal/model"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// UserKey is the context key for the signed-in storefront identity.
	UserKey ContextKey = "user"
)

// Claims represents JWT claims issued by the storefront.
type Claims struct {
	jwt.RegisteredClaims
	Name string `json:"name"`
}

// OptionalAuth parses a bearer token when one is present and attaches the
// signed-in identity to the request context. Requests without an
// Authorization header proceed anonymously; a present but invalid token
// is rejected.
func OptionalAuth(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				http.Error(w, `{"error":"invalid authorization header format"}`, http.StatusUnauthorized)
				return
			}

			tokenString := parts[1]

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})

			if err != nil || !token.Valid {
				http.Error(w, `{"error":"invalid token"}`, http.StatusUnauthorized)
				return
			}

			user := &model.User{
				ID:    claims.Subject,
				Name:  claims.Name,
				Token: tokenString,
			}
			ctx := context.WithValue(r.Context(), UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUser gets the signed-in identity from context, or nil for anonymous
// requests.
func GetUser(ctx context.Context) *model.User {
	if v := ctx.Value(UserKey); v != nil {
		return v.(*model.User)
	}
	return nil
}

// GetUserID gets the signed-in user ID from context, or "".
func GetUserID(ctx context.Context) string {
	if u := GetUser(ctx); u != nil {
		return u.ID
	}
	return ""
}
