package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mayur-keswani/strip-connect-demo/internal/auth"
	"github.com/mayur-keswani/strip-connect-demo/internal/payments"
)

type OnboardingHandler struct {
	Onboarding *payments.OnboardingService
}

// Start handles POST /stripe/account: ensures the user has a connected
// account and returns a fresh onboarding link.
func (h *OnboardingHandler) Start(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	result, err := h.Onboarding.Start(userContext(c), userID, c.Get("Origin"))
	if err != nil {
		return MapError(err)
	}

	return c.JSON(result)
}
