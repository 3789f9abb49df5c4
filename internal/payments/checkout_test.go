package payments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mayur-keswani/strip-connect-demo/internal/domain"
)

func testEvent() domain.Event {
	return domain.Event{
		ID:                  "ev-1",
		Name:                "Garden Party",
		Description:         "An evening in the gardens",
		Price:               19.99,
		Date:                time.Date(2026, 10, 1, 18, 0, 0, 0, time.UTC),
		Status:              domain.EventStatusPending,
		HostID:              "host-1",
		HostStripeAccountID: "acct_1",
	}
}

func TestCheckoutService_CreateSession(t *testing.T) {
	t.Parallel()

	t.Run("creates session with cent amount and correlation metadata", func(t *testing.T) {
		gw := &fakeGateway{sessionID: "cs_123"}
		svc := NewCheckoutService(newFakeEventStore(testEvent()), newFakeBookingStore(), gw)

		id, err := svc.CreateSession(context.Background(), CreateSessionInput{
			EventID: "ev-1",
			UserID:  "user-1",
			Origin:  "https://app.example.com",
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if id != "cs_123" {
			t.Fatalf("expected session cs_123, got %s", id)
		}

		if len(gw.sessions) != 1 {
			t.Fatalf("expected 1 session created, got %d", len(gw.sessions))
		}
		in := gw.sessions[0]
		if in.AmountCents != 1999 {
			t.Fatalf("expected amount 1999, got %d", in.AmountCents)
		}
		if in.EventID != "ev-1" || in.UserID != "user-1" || in.HostID != "host-1" {
			t.Fatalf("unexpected metadata triple: %+v", in)
		}
		if in.SuccessURL != "https://app.example.com/events?success=true&session_id={CHECKOUT_SESSION_ID}" {
			t.Fatalf("unexpected success URL %s", in.SuccessURL)
		}
		if in.CancelURL != "https://app.example.com/events?success=false" {
			t.Fatalf("unexpected cancel URL %s", in.CancelURL)
		}
	})

	t.Run("missing origin", func(t *testing.T) {
		svc := NewCheckoutService(newFakeEventStore(testEvent()), newFakeBookingStore(), &fakeGateway{})

		_, err := svc.CreateSession(context.Background(), CreateSessionInput{EventID: "ev-1", UserID: "user-1"})
		if !errors.Is(err, domain.ErrOriginRequired) {
			t.Fatalf("expected ErrOriginRequired, got %v", err)
		}
	})

	t.Run("unknown event", func(t *testing.T) {
		svc := NewCheckoutService(newFakeEventStore(), newFakeBookingStore(), &fakeGateway{})

		_, err := svc.CreateSession(context.Background(), CreateSessionInput{
			EventID: "nope",
			UserID:  "user-1",
			Origin:  "https://app.example.com",
		})
		if !errors.Is(err, domain.ErrEventNotFound) {
			t.Fatalf("expected ErrEventNotFound, got %v", err)
		}
	})

	t.Run("existing booking blocks a second checkout", func(t *testing.T) {
		store := newFakeBookingStore()
		if _, err := store.CreateFromCheckout(context.Background(), domain.Booking{
			EventID:           "ev-1",
			UserID:            "user-1",
			CheckoutSessionID: "cs_prev",
		}); err != nil {
			t.Fatalf("seed booking: %v", err)
		}

		gw := &fakeGateway{sessionID: "cs_456"}
		svc := NewCheckoutService(newFakeEventStore(testEvent()), store, gw)

		_, err := svc.CreateSession(context.Background(), CreateSessionInput{
			EventID: "ev-1",
			UserID:  "user-1",
			Origin:  "https://app.example.com",
		})
		if !errors.Is(err, domain.ErrAlreadyBooked) {
			t.Fatalf("expected ErrAlreadyBooked, got %v", err)
		}
		if len(gw.sessions) != 0 {
			t.Fatalf("gateway should not have been called")
		}
	})

	t.Run("gateway failure propagates", func(t *testing.T) {
		gw := &fakeGateway{sessionErr: ErrGateway}
		svc := NewCheckoutService(newFakeEventStore(testEvent()), newFakeBookingStore(), gw)

		_, err := svc.CreateSession(context.Background(), CreateSessionInput{
			EventID: "ev-1",
			UserID:  "user-1",
			Origin:  "https://app.example.com",
		})
		if !errors.Is(err, ErrGateway) {
			t.Fatalf("expected ErrGateway, got %v", err)
		}
	})
}
