package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frontline-homeworks/backend/pkg/helpers"
	"github.com/frontline-homeworks/backend/pkg/response"
)

// RequireAdmin rejects requests whose token role is not exactly "admin".
// It must run after Auth; a request without a valid token never gets here.
// Roles are compared flat, no hierarchy.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxUserRoleKey) != helpers.RoleAdmin {
			response.Error[any](c, http.StatusForbidden, "admin access required", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
