package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/frontline-homeworks/backend/internal/interface/http"
	"github.com/frontline-homeworks/backend/internal/interface/middleware"
	"github.com/frontline-homeworks/backend/pkg/helpers"
)

// AdminModule registers the dashboard and the admin-only mutations.
// Authentication always runs before the role check, so a missing token is
// a 401 and a non-admin token a 403.
type AdminModule struct {
	Handler *handlers.AdminHandler
	JWT     *helpers.JWTManager
}

func NewAdminModule(h *handlers.AdminHandler, jwt *helpers.JWTManager) *AdminModule {
	return &AdminModule{Handler: h, JWT: jwt}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.Auth(m.JWT), middleware.RequireAdmin())
	{
		admin.GET("/dashboard", m.Handler.Dashboard)
		admin.GET("/users", m.Handler.Users)
		admin.GET("/orders", m.Handler.Orders)
		admin.GET("/contacts", m.Handler.Contacts)
		admin.GET("/analytics", m.Handler.Analytics)
		admin.GET("/logs", m.Handler.RecentLogs)
		admin.PUT("/orders/:orderId", m.Handler.UpdateOrder)
		admin.PUT("/contacts/:contactId", m.Handler.UpdateContact)
		admin.DELETE("/users/:userId", m.Handler.DeleteUser)
	}
}
