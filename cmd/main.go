package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/frontline-homeworks/backend/config"
	"github.com/frontline-homeworks/backend/internal/container"
	"github.com/frontline-homeworks/backend/internal/infrastructure/memstore"
	"github.com/frontline-homeworks/backend/internal/interface/middleware"
	"github.com/frontline-homeworks/backend/internal/router"
	"github.com/frontline-homeworks/backend/pkg/helpers"
	"github.com/frontline-homeworks/backend/pkg/mailer"
	"github.com/frontline-homeworks/backend/pkg/payments"
	"github.com/frontline-homeworks/backend/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	logRing := helpers.NewRingHook(200)
	logger.AddHook(logRing)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	// Redis is optional; rate limiters fail open without it
	rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	jwtManager := helpers.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	// In-memory stores; everything lives and dies with the process
	users := memstore.NewUserStore()
	products := memstore.NewProductStore()
	orders := memstore.NewOrderStore()
	contacts := memstore.NewContactStore()
	if err := memstore.SeedUsers(users, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		logger.Fatalf("seed users: %v", err)
	}
	if err := memstore.SeedProducts(products); err != nil {
		logger.Fatalf("seed products: %v", err)
	}

	// Notification path: rabbit queue when configured, direct Mailgun
	// otherwise, nop when sending is disabled
	var notifier mailer.Notifier = mailer.NopNotifier{}
	if cfg.MailSendEnabled {
		if cfg.RabbitMQURL != "" {
			pub, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQEmailQueue)
			if err != nil {
				logger.Fatalf("rabbitmq connect: %v", err)
			}
			defer pub.Close()
			notifier = &mailer.RabbitNotifier{Pub: pub, Logger: logger}
		} else if cfg.MailgunDomain != "" && cfg.MailgunAPIKey != "" {
			mg := mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)
			notifier = &mailer.DirectNotifier{MG: mg, Logger: logger}
		} else {
			logger.Warn("no mail transport configured; notifications disabled")
		}
	}

	gateway := payments.NewStripeGateway(cfg.StripeSecretKey, cfg.StripeWebhookSecret)

	// Provide singletons to container for registry auto-wiring
	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetLogRing(logRing)
	container.SetRedis(rdb)
	container.SetJWT(jwtManager)
	container.SetNotifier(notifier)
	container.SetGateway(gateway)
	container.SetUserStore(users)
	container.SetProductStore(products)
	container.SetOrderStore(orders)
	container.SetContactStore(contacts)

	// Gin engine and global middleware
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RealIP())
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if origins := cfg.CORSOrigins(); len(origins) > 0 {
		corsCfg.AllowOrigins = origins
		corsCfg.AllowCredentials = true
	} else {
		corsCfg.AllowAllOrigins = true
	}
	r.Use(cors.New(corsCfg))
	if cfg.HTTPLogEnabled || cfg.Env == "development" {
		r.Use(gin.Logger())
	}

	// Registry: auto-register modules using container
	reg := router.NewRegistry(r)
	router.InitModules(reg)
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	logger.Info("server exited properly")
}
