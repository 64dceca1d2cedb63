package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Deepanshu41008/Yapassio-platform/internal/auth"
	"github.com/Deepanshu41008/Yapassio-platform/internal/models"
	"github.com/Deepanshu41008/Yapassio-platform/pkg/apperrors"
)

const (
	ctxUserIDKey = "userID"
	ctxRoleKey   = "role"
)

// AuthMiddleware rejects requests without a valid bearer token and stores
// the caller's identity on the gin context.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortWith(c, http.StatusUnauthorized, apperrors.CodeUnauthorized, "Authorization header missing or invalid")
			return
		}

		claims, err := tokens.Parse(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			abortWith(c, http.StatusUnauthorized, apperrors.CodeInvalidToken, "Invalid or expired token")
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxRoleKey, claims.Role)
		c.Next()
	}
}

// RequireRoles allows the request through only when the authenticated role
// is in the allow list.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	allowed := make(map[models.UserRole]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		roleVal, exists := c.Get(ctxRoleKey)
		if !exists {
			abortWith(c, http.StatusForbidden, apperrors.CodeForbidden, "Access denied: no role")
			return
		}

		role, ok := roleVal.(models.UserRole)
		if !ok {
			roleStr, isString := roleVal.(string)
			if !isString {
				abortWith(c, http.StatusForbidden, apperrors.CodeForbidden, "Access denied: invalid role")
				return
			}
			role = models.UserRole(roleStr)
		}

		if !allowed[role] {
			abortWith(c, http.StatusForbidden, apperrors.CodeForbidden, "Access denied: insufficient permissions")
			return
		}

		c.Next()
	}
}

// GetUserID returns the authenticated user id, or "" on public routes.
func GetUserID(c *gin.Context) string {
	if id, ok := c.Get(ctxUserIDKey); ok {
		if s, isString := id.(string); isString {
			return s
		}
	}
	return ""
}

func abortWith(c *gin.Context, status int, code apperrors.ErrorCode, message string) {
	c.AbortWithStatusJSON(status, apperrors.ErrorResponse{
		Success: false,
		Error:   apperrors.New(code, message, status),
	})
}
