package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/frontline-homeworks/backend/pkg/helpers"
	"github.com/frontline-homeworks/backend/pkg/response"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxUserIDKey   = "userID"
	CtxUserRoleKey = "userRole"
)

// Auth reads the bearer token from the Authorization header, verifies it
// and injects the subject id and role into the Gin context. Validity comes
// from the token alone; there is no server-side session.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.Error[any](c, http.StatusUnauthorized, "no token provided", nil)
			c.Abort()
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid or expired token", nil)
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUserRoleKey, claims.Role)
		c.Next()
	}
}

// UserID returns the authenticated subject id set by Auth.
func UserID(c *gin.Context) int64 {
	return c.GetInt64(CtxUserIDKey)
}
