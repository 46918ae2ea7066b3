package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/frontline-homeworks/backend/internal/container"
	handlers "github.com/frontline-homeworks/backend/internal/interface/http"
	"github.com/frontline-homeworks/backend/internal/interface/middleware"
	"github.com/frontline-homeworks/backend/pkg/helpers"
)

// ContactModule takes public submissions; reading them back is admin-only.
type ContactModule struct {
	Handler *handlers.ContactHandler
	JWT     *helpers.JWTManager
}

func NewContactModule(h *handlers.ContactHandler, jwt *helpers.JWTManager) *ContactModule {
	return &ContactModule{Handler: h, JWT: jwt}
}

func (m *ContactModule) Register(rg *gin.RouterGroup) {
	submitLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	rg.POST("/contact", submitLimiter, m.Handler.Submit)

	admin := rg.Group("/")
	admin.Use(middleware.Auth(m.JWT), middleware.RequireAdmin())
	{
		admin.GET("/contact", m.Handler.List)
		admin.GET("/contact/:id", m.Handler.Get)
	}
}
