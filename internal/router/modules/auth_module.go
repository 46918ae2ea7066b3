package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/frontline-homeworks/backend/internal/container"
	handlers "github.com/frontline-homeworks/backend/internal/interface/http"
	"github.com/frontline-homeworks/backend/internal/interface/middleware"
	"github.com/frontline-homeworks/backend/pkg/helpers"
)

type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Public endpoints with IP-based rate limits
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)
	resetLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
	rg.POST("/auth/forgot-password", resetLimiter, m.Handler.ForgotPassword)

	// Protected
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.GET("/auth/profile", m.Handler.Profile)
		auth.POST("/auth/logout", m.Handler.Logout)
	}
}
