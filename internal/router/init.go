package router

import (
	"github.com/frontline-homeworks/backend/internal/application"
	"github.com/frontline-homeworks/backend/internal/container"
	handlers "github.com/frontline-homeworks/backend/internal/interface/http"
	"github.com/frontline-homeworks/backend/internal/router/modules"
)

// InitModules initializes all application modules and registers them with
// the router registry. Called once during startup after the container is
// populated.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	jwt := container.GetJWT()
	notifier := container.GetNotifier()

	users := container.GetUserStore()
	products := container.GetProductStore()
	orders := container.GetOrderStore()
	contacts := container.GetContactStore()

	authSvc := application.NewAuthService(users, jwt, notifier, logger, cfg.CompanyName, cfg.FrontendURL)
	paymentSvc := application.NewPaymentService(orders, container.GetGateway(), notifier, logger, cfg.CompanyName)
	contactSvc := application.NewContactService(contacts, notifier, logger, cfg.CompanyName)
	adminSvc := application.NewAdminService(users, orders, contacts, logger)

	r.Engine.GET("/api/health", handlers.Health)

	r.Add(modules.NewProductModule(handlers.NewProductHandler(products, logger), jwt))
	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger), jwt))
	r.Add(modules.NewContactModule(handlers.NewContactHandler(contactSvc, contacts, logger), jwt))
	r.Add(modules.NewPaymentModule(handlers.NewPaymentHandler(paymentSvc, logger, cfg.StripePublishableKey), jwt))
	r.Add(modules.NewAdminModule(handlers.NewAdminHandler(adminSvc, container.GetLogRing(), logger), jwt))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
