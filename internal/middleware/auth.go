package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"agenthub_backend/internal/auth"
	"agenthub_backend/internal/logger"
	"agenthub_backend/internal/models"
	"agenthub_backend/pkg/apperrors"
)

const (
	ContextUserIDKey   = "userID"
	ContextUserRoleKey = "userRole"
	ContextUserNameKey = "userName"
)

// AuthMiddleware verifies the bearer token and stores the caller's
// identity on the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "Authorization header required")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "Authorization header must be 'Bearer {token}'")
			return
		}

		claims, err := auth.ParseToken(parts[1])
		if err != nil {
			logger.Debug("token rejected", "error", err)
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextUserRoleKey, claims.Role)
		c.Set(ContextUserNameKey, claims.Name)

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RoleMiddleware allows only the listed roles past it. It must run
// after AuthMiddleware.
func RoleMiddleware(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			abortUnauthorized(c, "Authentication required")
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, apperrors.ErrorResponse{
			Error: apperrors.NewForbiddenError("Insufficient permissions for this action"),
		})
	}
}

// GetUserID returns the authenticated user id, if any.
func GetUserID(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextUserIDKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

// GetUserRole returns the authenticated user's role, if any.
func GetUserRole(c *gin.Context) (models.UserRole, bool) {
	v, ok := c.Get(ContextUserRoleKey)
	if !ok {
		return "", false
	}
	role, ok := v.(string)
	return models.UserRole(role), ok && role != ""
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, apperrors.ErrorResponse{
		Error: apperrors.NewUnauthorizedError(message),
	})
}
