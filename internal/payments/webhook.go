package payments

import (
	"context"
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/mayur-keswani/strip-connect-demo/internal/domain"
)

// WebhookHandler receives Stripe event deliveries. The signature over the
// raw body is verified before any payload content is trusted; a handling
// failure returns a non-2xx status so Stripe redelivers.
func WebhookHandler(secret string, bookings BookingStore, users UserStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Body()
		sig := c.Get("Stripe-Signature")

		if secret == "" || sig == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid signature"})
		}

		event, err := webhook.ConstructEventWithOptions(raw, sig, secret, webhook.ConstructEventOptions{
			IgnoreAPIVersionMismatch: true,
		})
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid signature"})
		}

		switch string(event.Type) {
		case "checkout.session.completed":
			return handleCheckoutCompleted(c, event, bookings)

		case "account.updated":
			return handleAccountUpdated(c, event, users)

		case "payment_intent.succeeded":
			return handlePaymentIntent(c, event, bookings, domain.PaymentStatusPaid)

		case "payment_intent.payment_failed":
			return handlePaymentIntent(c, event, bookings, domain.PaymentStatusFailed)

		default:
			log.Printf("webhook: ignoring event type %s", event.Type)
			return c.JSON(fiber.Map{"received": true})
		}
	}
}

func handleCheckoutCompleted(c *fiber.Ctx, event stripe.Event, bookings BookingStore) error {
	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad payload"})
	}

	eventID := sess.Metadata["event_id"]
	userID := sess.Metadata["user_id"]
	if eventID == "" || userID == "" {
		// Permanently malformed; redelivery would not help.
		log.Printf("webhook: checkout session %s missing booking metadata", sess.ID)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing metadata"})
	}

	paymentIntentID := ""
	if sess.PaymentIntent != nil {
		paymentIntentID = sess.PaymentIntent.ID
	}

	created, err := bookings.CreateFromCheckout(userContext(c), domain.Booking{
		EventID:           eventID,
		UserID:            userID,
		CheckoutSessionID: sess.ID,
		PaymentIntentID:   paymentIntentID,
	})
	if err != nil {
		log.Printf("webhook: create booking for session %s: %v", sess.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "booking failed"})
	}
	if !created {
		log.Printf("webhook: duplicate delivery for session %s", sess.ID)
	}
	return c.JSON(fiber.Map{"received": true})
}

func handleAccountUpdated(c *fiber.Ctx, event stripe.Event, users UserStore) error {
	var acct stripe.Account
	if err := json.Unmarshal(event.Data.Raw, &acct); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad payload"})
	}

	if acct.ID != "" && acct.ChargesEnabled && acct.PayoutsEnabled {
		if err := users.MarkOnboardedByAccount(userContext(c), acct.ID); err != nil {
			log.Printf("webhook: mark onboarded for account %s: %v", acct.ID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "onboarding update failed"})
		}
	}
	return c.JSON(fiber.Map{"received": true})
}

func handlePaymentIntent(c *fiber.Ctx, event stripe.Event, bookings BookingStore, status domain.PaymentStatus) error {
	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad payload"})
	}

	if err := bookings.SetPaymentStatusByIntent(userContext(c), pi.ID, status); err != nil {
		log.Printf("webhook: set payment status for intent %s: %v", pi.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "status update failed"})
	}
	return c.JSON(fiber.Map{"received": true})
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
