package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mayur-keswani/strip-connect-demo/internal/auth"
	"github.com/mayur-keswani/strip-connect-demo/internal/payments"
)

// PaymentHandler exposes checkout-session creation and the host payout
// transition over HTTP.
type PaymentHandler struct {
	Checkout *payments.CheckoutService
	Payout   *payments.PayoutService
}

type checkoutSessionRequest struct {
	EventID string `json:"eventId"`
}

type checkoutSessionResponse struct {
	SessionID string `json:"sessionId"`
}

func (h *PaymentHandler) CreateCheckoutSession(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req checkoutSessionRequest
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.EventID) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "eventId required")
	}

	sessionID, err := h.Checkout.CreateSession(userContext(c), payments.CreateSessionInput{
		EventID: req.EventID,
		UserID:  userID,
		Origin:  c.Get("Origin"),
	})
	if err != nil {
		return MapError(err)
	}

	return c.JSON(checkoutSessionResponse{SessionID: sessionID})
}

type markCompletedRequest struct {
	EventID string `json:"eventId"`
	Status  string `json:"status"`
}

func (h *PaymentHandler) MarkEventCompleted(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req markCompletedRequest
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.EventID) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "eventId required")
	}
	if req.Status != "" && req.Status != "completed" {
		return fiber.NewError(fiber.StatusBadRequest, "status must be completed")
	}

	result, err := h.Payout.CompleteEvent(userContext(c), payments.CompleteEventInput{
		EventID: req.EventID,
		HostID:  userID,
	})
	if err != nil {
		return MapError(err)
	}

	return c.JSON(result)
}
