package http

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/mayur-keswani/strip-connect-demo/internal/auth"
	"github.com/mayur-keswani/strip-connect-demo/internal/domain"
)

// UserStore is the slice of the users repository the auth endpoints need.
type UserStore interface {
	Create(ctx context.Context, email string, name *string, passwordHash string) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
}

type AuthHandler struct {
	Users    UserStore
	Sessions *auth.Sessions
}

type signupRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var body signupRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	body.Email = strings.TrimSpace(body.Email)
	if body.Email == "" || body.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email and password required")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "internal server error")
	}

	var name *string
	if n := strings.TrimSpace(body.Name); n != "" {
		name = &n
	}

	user, err := h.Users.Create(userContext(c), body.Email, name, string(hashed))
	if err != nil {
		return MapError(err)
	}

	if err := h.setSessionCookie(c, user.ID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "internal server error")
	}
	return c.Status(fiber.StatusCreated).JSON(user.Summary())
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body loginRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	user, err := h.Users.GetByEmail(userContext(c), strings.TrimSpace(body.Email))
	if err != nil {
		// Unknown email and wrong password are indistinguishable on purpose.
		return MapError(domain.ErrInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
		return MapError(domain.ErrInvalidCredentials)
	}

	if err := h.setSessionCookie(c, user.ID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "internal server error")
	}
	return c.JSON(user.Summary())
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Expires:  time.Unix(0, 0),
	})
	return c.JSON(fiber.Map{"message": "logged out"})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	user, err := h.Users.GetByID(userContext(c), userID)
	if err != nil {
		return MapError(err)
	}
	return c.JSON(user.Summary())
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, userID string) error {
	token, err := h.Sessions.Issue(userID)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Expires:  time.Now().Add(h.Sessions.TTL()),
	})
	return nil
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
