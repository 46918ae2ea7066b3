package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/frontline-homeworks/backend/internal/container"
	handlers "github.com/frontline-homeworks/backend/internal/interface/http"
	"github.com/frontline-homeworks/backend/internal/interface/middleware"
	"github.com/frontline-homeworks/backend/pkg/helpers"
)

// PaymentModule wires the intent/confirm flow and order lookups. The
// webhook stays public; its authenticity comes from the gateway signature.
type PaymentModule struct {
	Handler *handlers.PaymentHandler
	JWT     *helpers.JWTManager
}

func NewPaymentModule(h *handlers.PaymentHandler, jwt *helpers.JWTManager) *PaymentModule {
	return &PaymentModule{Handler: h, JWT: jwt}
}

func (m *PaymentModule) Register(rg *gin.RouterGroup) {
	rg.POST("/payments/webhook", m.Handler.Webhook)

	// Gateway-touching routes are limited per authenticated user
	payLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByUserID(), nil)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.POST("/payments/create-intent", payLimiter, m.Handler.CreateIntent)
		auth.POST("/payments/confirm", payLimiter, m.Handler.Confirm)
		auth.GET("/payments/orders", m.Handler.Orders)
		auth.GET("/payments/orders/:orderId", m.Handler.Order)
	}
}
