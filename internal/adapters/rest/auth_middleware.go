package rest

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Кастомный тип для ключей контекста, чтобы избежать коллизий.
type contextKey string

const (
	userEmailKey   = contextKey("userEmail")
	bearerTokenKey = contextKey("bearerToken")
)

// AuthMiddleware проверяет Bearer-токен и кладет email пользователя
// в контекст запроса. Сам токен тоже сохраняется: он нужен для
// последующего вызова auth-service.
type AuthMiddleware struct {
	jwtSecret []byte
}

func NewAuthMiddleware(jwtSecret string) *AuthMiddleware {
	return &AuthMiddleware{jwtSecret: []byte(jwtSecret)}
}

func (am *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			WriteJSONError(w, http.StatusUnauthorized, "Authorization header required")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			WriteJSONError(w, http.StatusUnauthorized, "Invalid token format")
			return
		}

		claims := jwt.MapClaims{}
		_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return am.jwtSecret, nil
		})
		if err != nil {
			WriteJSONError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		email, ok := claims["email"].(string)
		if !ok || email == "" {
			WriteJSONError(w, http.StatusUnauthorized, "Token has no email claim")
			return
		}

		ctx := context.WithValue(r.Context(), userEmailKey, email)
		ctx = context.WithValue(ctx, bearerTokenKey, tokenString)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserEmailFromRequest извлекает email аутентифицированного пользователя.
func UserEmailFromRequest(r *http.Request) string {
	if email, ok := r.Context().Value(userEmailKey).(string); ok {
		return email
	}
	return ""
}

// BearerTokenFromRequest извлекает исходный Bearer-токен.
func BearerTokenFromRequest(r *http.Request) string {
	if token, ok := r.Context().Value(bearerTokenKey).(string); ok {
		return token
	}
	return ""
}
