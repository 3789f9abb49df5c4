package config

import (
	"github.com/kelseyhightower/envconfig"
)

// App is assembled once at startup and passed to collaborators; nothing
// reads the environment after Load returns.
type App struct {
	// DB
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`
	// Sessions
	JWTSecret  string `envconfig:"JWT_SECRET" required:"true"`
	SessionTTL int    `envconfig:"SESSION_TTL_HOURS" default:"24"`
	// Stripe
	StripeSecretKey     string `envconfig:"STRIPE_SECRET_KEY" required:"true"`
	StripeWebhookSecret string `envconfig:"STRIPE_WEBHOOK_SECRET" required:"true"`
	// Network
	Port       string `envconfig:"PORT" default:"8080"`
	CORSOrigin string `envconfig:"CORS_ORIGIN" default:"*"`
	Env        string `envconfig:"ENV" default:"dev"`
	// Rate limiting for auth and checkout endpoints
	RateLimitMax           int `envconfig:"RATE_LIMIT_MAX" default:"60"`
	RateLimitWindowSeconds int `envconfig:"RATE_LIMIT_WINDOW_SECONDS" default:"60"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
