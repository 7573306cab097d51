package middleware

import (
	"net/http"
	"strings"

	"helpdesk/internal/auth"
	"helpdesk/internal/config"
	"helpdesk/internal/model"

	"github.com/gin-gonic/gin"
)

// Context keys populated by AuthMiddleware
const (
	CtxUserIDKey   = "user_id"
	CtxUsernameKey = "username"
	CtxRoleKey     = "user_role"
	CtxBranchKey   = "user_branch"
)

// AuthMiddleware verifies the bearer token and stores the requester
// claims on the request context. Every protected operation reads its
// identity from here, never from the request body.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.NewErrorResponse("Authorization header missing", ""))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.NewErrorResponse("Authorization format must be 'Bearer <token>'", ""))
			return
		}

		claims, err := auth.ParseToken(cfg.JWT.Secret, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.NewErrorResponse("Invalid or expired token", ""))
			return
		}

		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUsernameKey, claims.Username)
		c.Set(CtxRoleKey, model.NormalizeRole(claims.Role))
		c.Set(CtxBranchKey, claims.Branch)

		c.Next()
	}
}

// RequireAdmin gates administrative routes. Must run after
// AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxRoleKey) != model.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, model.NewErrorResponse("Access denied. Admins only.", ""))
			return
		}
		c.Next()
	}
}
