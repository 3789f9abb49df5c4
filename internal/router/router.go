package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mayur-keswani/strip-connect-demo/internal/events"
	handlers "github.com/mayur-keswani/strip-connect-demo/internal/http"
)

type Router struct {
	AuthHandler       *handlers.AuthHandler
	EventsHandler     *events.Handler
	PaymentHandler    *handlers.PaymentHandler
	OnboardingHandler *handlers.OnboardingHandler
	WebhookHandler    fiber.Handler
	RateLimit         fiber.Handler
}

func (r *Router) RegisterRoutes(app *fiber.App) {
	if r.AuthHandler != nil {
		if r.RateLimit != nil {
			app.Post("/auth/signup", r.RateLimit, r.AuthHandler.Signup)
			app.Post("/auth/login", r.RateLimit, r.AuthHandler.Login)
		} else {
			app.Post("/auth/signup", r.AuthHandler.Signup)
			app.Post("/auth/login", r.AuthHandler.Login)
		}
		app.Post("/auth/logout", r.AuthHandler.Logout)
		app.Get("/auth/me", r.AuthHandler.Me)
	}

	if r.EventsHandler != nil {
		app.Get("/events", r.EventsHandler.List)
		app.Post("/events", r.EventsHandler.Create)
	}

	if r.PaymentHandler != nil {
		if r.RateLimit != nil {
			app.Post("/checkout-session", r.RateLimit, r.PaymentHandler.CreateCheckoutSession)
		} else {
			app.Post("/checkout-session", r.PaymentHandler.CreateCheckoutSession)
		}
		app.Put("/events/mark-as-completed", r.PaymentHandler.MarkEventCompleted)
	}

	if r.OnboardingHandler != nil {
		app.Post("/stripe/account", r.OnboardingHandler.Start)
	}

	if r.WebhookHandler != nil {
		app.Post("/stripe/webhook", r.WebhookHandler)
	}
}
