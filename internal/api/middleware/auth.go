// Package middleware provides the HTTP middleware chain: authentication,
// request identity, logging, recovery and rate limiting.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/ilyra-ai/ilyra-sub000/internal/auth"
	"github.com/ilyra-ai/ilyra-sub000/internal/domain/user"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/errors"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/utils"
)

type contextKey string

const (
	userIDKey    contextKey = "user_id"
	userRoleKey  contextKey = "user_role"
	userEmailKey contextKey = "user_email"
)

// RequireAuth validates the bearer token and stores the caller's
// identity in the request context. Requests without a valid token get
// a 401 and never reach the handler.
func RequireAuth(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				utils.WriteError(w, errors.Unauthorized("Missing authentication token"))
				return
			}

			claims, err := auth.ParseClaims(token, jwtSecret)
			if err != nil {
				utils.WriteError(w, errors.Unauthorized("Invalid or expired token"))
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			ctx = context.WithValue(ctx, userRoleKey, claims.Role)
			ctx = context.WithValue(ctx, userEmailKey, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin gates a route group to the back-office role. Must run
// after RequireAuth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetUserRole(r.Context()) != user.RoleAdmin {
			utils.WriteError(w, errors.Forbidden("Administrator access required"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// extractToken reads the token from the Authorization header, falling
// back to the session cookie used by browser clients.
func extractToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := r.Cookie("ilyra_session"); err == nil {
		return cookie.Value
	}
	return ""
}

// GetUserID returns the authenticated user's ID from the context
func GetUserID(ctx context.Context) int64 {
	if id, ok := ctx.Value(userIDKey).(int64); ok {
		return id
	}
	return 0
}

// GetUserRole returns the authenticated user's role from the context
func GetUserRole(ctx context.Context) string {
	if role, ok := ctx.Value(userRoleKey).(string); ok {
		return role
	}
	return ""
}

// GetUserEmail returns the authenticated user's email from the context
func GetUserEmail(ctx context.Context) string {
	if email, ok := ctx.Value(userEmailKey).(string); ok {
		return email
	}
	return ""
}
