package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/mayur-keswani/strip-connect-demo/internal/auth"
	"github.com/mayur-keswani/strip-connect-demo/internal/bookings"
	"github.com/mayur-keswani/strip-connect-demo/internal/config"
	"github.com/mayur-keswani/strip-connect-demo/internal/events"
	apphttp "github.com/mayur-keswani/strip-connect-demo/internal/http"
	"github.com/mayur-keswani/strip-connect-demo/internal/payments"
	"github.com/mayur-keswani/strip-connect-demo/internal/router"
	"github.com/mayur-keswani/strip-connect-demo/internal/users"
	"github.com/mayur-keswani/strip-connect-demo/migrations"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("error creating pgx pool: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("error pinging database: %v", err)
	}

	if err := migrations.Apply(ctx, pool); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "internal server error"

			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
				message = fiberErr.Message
			}

			return c.Status(code).JSON(fiber.Map{"error": message})
		},
	})

	sessions := auth.NewSessions(cfg.JWTSecret, time.Duration(cfg.SessionTTL)*time.Hour)

	app.Use(router.CorsMiddleware(cfg.CORSOrigin))
	app.Use(requestLogger())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("API Working")
	})

	app.Use(auth.SessionGate(sessions))

	userRepo := users.NewRepository(pool)
	eventRepo := events.NewRepository(pool)
	bookingRepo := bookings.NewRepository(pool)
	gateway := payments.NewStripeGateway(cfg.StripeSecretKey)

	r := &router.Router{
		AuthHandler:   &apphttp.AuthHandler{Users: userRepo, Sessions: sessions},
		EventsHandler: events.NewHandler(eventRepo),
		PaymentHandler: &apphttp.PaymentHandler{
			Checkout: payments.NewCheckoutService(eventRepo, bookingRepo, gateway),
			Payout:   payments.NewPayoutService(eventRepo, bookingRepo, gateway),
		},
		OnboardingHandler: &apphttp.OnboardingHandler{
			Onboarding: payments.NewOnboardingService(userRepo, gateway),
		},
		WebhookHandler: payments.WebhookHandler(cfg.StripeWebhookSecret, bookingRepo, userRepo),
		RateLimit:      rateLimit(cfg),
	}
	r.RegisterRoutes(app)

	log.Println("Listening on port", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}

func rateLimit(cfg config.App) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: time.Duration(cfg.RateLimitWindowSeconds) * time.Second,
	})
}

func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		log.Printf("%s %s %d %s", c.Method(), c.Path(), status, time.Since(start))
		return err
	}
}
