package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/mayur-keswani/strip-connect-demo/internal/domain"
	"github.com/mayur-keswani/strip-connect-demo/internal/payments"
)

// MapError converts a domain error into a fiber error with a stable,
// non-leaking message. Anything outside the closed set becomes a 500.
func MapError(err error) *fiber.Error {
	switch {
	case errors.Is(err, domain.ErrOriginRequired):
		return fiber.NewError(fiber.StatusBadRequest, "origin header required")
	case errors.Is(err, domain.ErrInvalidCredentials):
		return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, domain.ErrNotEventHost):
		return fiber.NewError(fiber.StatusForbidden, "not the event host")
	case errors.Is(err, domain.ErrEventNotFound), errors.Is(err, domain.ErrInvalidID):
		return fiber.NewError(fiber.StatusNotFound, "event not found")
	case errors.Is(err, domain.ErrUserNotFound):
		return fiber.NewError(fiber.StatusNotFound, "user not found")
	case errors.Is(err, domain.ErrEmailTaken):
		return fiber.NewError(fiber.StatusConflict, "email already registered")
	case errors.Is(err, domain.ErrAlreadyBooked):
		return fiber.NewError(fiber.StatusConflict, "event already booked")
	case errors.Is(err, domain.ErrEventAlreadyCompleted):
		return fiber.NewError(fiber.StatusConflict, "event already completed")
	case errors.Is(err, domain.ErrHostNotOnboarded):
		return fiber.NewError(fiber.StatusConflict, "host has no connected account")
	case errors.Is(err, payments.ErrGateway):
		return fiber.NewError(fiber.StatusBadGateway, "payment gateway error")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "internal server error")
	}
}
