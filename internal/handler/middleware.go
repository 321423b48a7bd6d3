// internal/handler/middleware.go
package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/heartielabs/heartie-backend/internal/service"
)

type ctxKey string

const userIDKey ctxKey = "user_id"

type Middleware struct {
	Auth *service.AuthService
}

// RequireAuth verifies the Bearer token and stores the user id in the
// request context.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			return
		}

		userID, err := m.Auth.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID reads the authenticated user id set by RequireAuth.
func UserID(ctx context.Context) int {
	if v, ok := ctx.Value(userIDKey).(int); ok {
		return v
	}
	return 0
}
