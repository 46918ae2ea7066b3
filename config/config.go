package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration loaded from environment variables
// Provide sane defaults for local development.
type Config struct {
	AppName string
	Env     string // development, staging, production
	Port    string
	GinMode string

	// JWT
	JWTSecret string
	TokenTTL  time.Duration

	// Redis (rate limiting only; limiters fail open when unreachable)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// CORS
	CORSAllowedOrigins string // comma-separated

	// Stripe
	StripeSecretKey      string
	StripePublishableKey string
	StripeWebhookSecret  string

	// Mailgun
	MailgunDomain string
	MailgunAPIKey string
	MailgunSender string

	// RabbitMQ
	RabbitMQURL        string
	RabbitMQEmailQueue string

	// Seed admin account
	AdminEmail    string
	AdminPassword string

	// Links for emails
	CompanyName string
	FrontendURL string

	// Email sending toggle
	MailSendEnabled bool

	// Debug metrics (/api/debug/vars)
	DebugMetricsEnabled bool

	// HTTP access log toggle (Gin logger)
	HTTPLogEnabled bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		AppName: getenv("APP_NAME", "frontline-backend"),
		Env:     getenv("APP_ENV", "development"),
		Port:    getenv("PORT", "5001"),
		GinMode: getenv("GIN_MODE", "release"),

		JWTSecret: getenv("JWT_SECRET", "your-secret-key-change-in-production"),
		TokenTTL:  getdur("JWT_TTL", 168*time.Hour),

		RedisAddr:     getenv("REDIS_ADDR", ""),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       getint("REDIS_DB", 0),

		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", ""),

		StripeSecretKey:      getenv("STRIPE_SECRET_KEY", ""),
		StripePublishableKey: getenv("STRIPE_PUBLISHABLE_KEY", ""),
		StripeWebhookSecret:  getenv("STRIPE_WEBHOOK_SECRET", ""),

		MailgunDomain: getenv("MAILGUN_DOMAIN", ""),
		MailgunAPIKey: getenv("MAILGUN_API_KEY", ""),
		MailgunSender: getenv("MAILGUN_SENDER", "noreply@frontlinehomeworks.com"),

		RabbitMQURL:        getenv("RABBITMQ_URL", ""),
		RabbitMQEmailQueue: getenv("RABBITMQ_EMAIL_QUEUE", "emails"),

		AdminEmail:    getenv("ADMIN_EMAIL", "admin@frontline.com"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),

		CompanyName: getenv("COMPANY_NAME", "FRONTLINE Homeworks"),
		FrontendURL: getenv("FRONTEND_URL", "http://localhost:3000"),

		MailSendEnabled: getbool("MAIL_SEND_ENABLED", true),

		DebugMetricsEnabled: getbool("DEBUG_METRICS_ENABLED", true),

		HTTPLogEnabled: getbool("HTTP_LOG_ENABLED", false),
	}
}

// CORSOrigins returns the allowed origins as slice
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
