package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mayur-keswani/strip-connect-demo/internal/auth"
	"github.com/mayur-keswani/strip-connect-demo/internal/domain"
)

type fakeStore struct {
	inserted []domain.Event
	listed   []domain.EventWithBooking
}

func (f *fakeStore) Insert(_ context.Context, ev *domain.Event) (string, error) {
	f.inserted = append(f.inserted, *ev)
	return "ev-new", nil
}

func (f *fakeStore) ListForUser(_ context.Context, userID string) ([]domain.EventWithBooking, error) {
	return f.listed, nil
}

func eventsApp(store *fakeStore, sessions *auth.Sessions) *fiber.App {
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
	app.Use(auth.SessionGate(sessions))
	h := NewHandler(store)
	app.Get("/events", h.List)
	app.Post("/events", h.Create)
	return app
}

func TestHandler_Create(t *testing.T) {
	t.Parallel()

	sessions := auth.NewSessions("test-secret", time.Hour)
	token, err := sessions.Issue("host-1")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	t.Run("creates pending event owned by the caller", func(t *testing.T) {
		store := &fakeStore{}
		app := eventsApp(store, sessions)

		body, _ := json.Marshal(map[string]any{
			"name":        "Garden Party",
			"description": "An evening in the gardens",
			"price":       19.99,
			"date":        "2026-10-01",
		})
		req := httptest.NewRequest("POST", "/events", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != fiber.StatusCreated {
			t.Fatalf("expected 201, got %d", resp.StatusCode)
		}
		if len(store.inserted) != 1 {
			t.Fatalf("expected 1 insert, got %d", len(store.inserted))
		}
		ev := store.inserted[0]
		if ev.HostID != "host-1" {
			t.Fatalf("expected host-1 as owner, got %s", ev.HostID)
		}
		if ev.Status != domain.EventStatusPending {
			t.Fatalf("expected pending status, got %s", ev.Status)
		}
	})

	t.Run("rejects missing name", func(t *testing.T) {
		app := eventsApp(&fakeStore{}, sessions)

		body, _ := json.Marshal(map[string]any{"price": 10.0, "date": "2026-10-01"})
		req := httptest.NewRequest("POST", "/events", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Fatalf("expected 400, got %d", resp.StatusCode)
		}
	})
}

func TestHandler_List(t *testing.T) {
	t.Parallel()

	sessions := auth.NewSessions("test-secret", time.Hour)
	token, err := sessions.Issue("user-1")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	store := &fakeStore{
		listed: []domain.EventWithBooking{
			{Event: domain.Event{ID: "ev-1", Name: "Garden Party"}, Booked: true},
			{Event: domain.Event{ID: "ev-2", Name: "Night Market"}, Booked: false},
		},
	}
	app := eventsApp(store, sessions)

	req := httptest.NewRequest("GET", "/events", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var got []domain.EventWithBooking
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}
	if !got[0].Booked || got[1].Booked {
		t.Fatalf("booking annotations wrong: %+v", got)
	}
}
