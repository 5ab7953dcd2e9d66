package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"praxis/internal/auth"
	"praxis/internal/shared/utils/response"
	"praxis/internal/users"
)

// UserDirectory resolves an authenticated token back to a live user record.
// A token whose subject has been removed is rejected even when the
// signature still verifies.
type UserDirectory interface {
	GetByID(ctx context.Context, id uuid.UUID) (*users.User, error)
}

// AuthMiddleware is the two-stage request gate: Authenticate resolves the
// caller's identity and role from the bearer token, RequireRoles checks the
// resolved role against an allow list. RequireRoles must run after
// Authenticate.
type AuthMiddleware struct {
	tokens *auth.TokenManager
	users  UserDirectory
}

func NewAuthMiddleware(tokens *auth.TokenManager, users UserDirectory) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users}
}

// Authenticate extracts and verifies the bearer access token, then attaches
// user_id, user_email and user_role to the request context. Missing token is
// 401; a token that fails verification or references a vanished user is 403.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.RespondJSON(c, "error", http.StatusUnauthorized, "No token provided", nil, nil)
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.RespondJSON(c, "error", http.StatusUnauthorized, "Authorization header format must be Bearer {token}", nil, nil)
			c.Abort()
			return
		}

		claims, err := m.tokens.VerifyAccessToken(parts[1])
		if err != nil {
			response.RespondJSON(c, "error", http.StatusForbidden, "Invalid or expired token", nil, nil)
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			response.RespondJSON(c, "error", http.StatusForbidden, "Invalid or expired token", nil, nil)
			c.Abort()
			return
		}

		user, err := m.users.GetByID(c.Request.Context(), userID)
		if err != nil || !user.IsActive {
			response.RespondJSON(c, "error", http.StatusForbidden, "Invalid or expired token", nil, nil)
			c.Abort()
			return
		}

		// Role comes from the live record, not the token claim, so a role
		// change takes effect within the access window.
		c.Set("user_id", user.ID.String())
		c.Set("user_email", user.Email)
		c.Set("user_role", user.Role.Name)

		c.Next()
	}
}

// RequireRoles passes the request through only when the authenticated role
// is in the allow list. A missing identity means the gate was wired without
// Authenticate, reported as 401 rather than 403.
func (m *AuthMiddleware) RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("user_role")
		if !exists {
			response.RespondJSON(c, "error", http.StatusUnauthorized, "Not authenticated", nil, nil)
			c.Abort()
			return
		}

		for _, role := range allowedRoles {
			if userRole.(string) == role {
				c.Next()
				return
			}
		}

		response.RespondJSON(c, "error", http.StatusForbidden, "Forbidden: insufficient privileges", nil, nil)
		c.Abort()
	}
}
