package events

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mayur-keswani/strip-connect-demo/internal/auth"
	"github.com/mayur-keswani/strip-connect-demo/internal/domain"
)

// Store is the slice of the repository the handlers need.
type Store interface {
	Insert(ctx context.Context, ev *domain.Event) (string, error)
	ListForUser(ctx context.Context, userID string) ([]domain.EventWithBooking, error)
}

type Handler struct {
	Store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{Store: store}
}

type createEventRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Date        string  `json:"date"`
}

func (h *Handler) List(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	evs, err := h.Store.ListForUser(userContext(c), userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch events")
	}
	if evs == nil {
		evs = []domain.EventWithBooking{}
	}
	return c.JSON(evs)
}

func (h *Handler) Create(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req createEventRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name required")
	}
	if req.Price <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "price must be greater than zero")
	}
	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		if date, err = time.Parse("2006-01-02", req.Date); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "date must be RFC3339 or YYYY-MM-DD")
		}
	}

	ev := &domain.Event{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Date:        date,
		Status:      domain.EventStatusPending,
		HostID:      userID,
	}

	id, err := h.Store.Insert(userContext(c), ev)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create event")
	}
	ev.ID = id

	return c.Status(fiber.StatusCreated).JSON(ev)
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
