package payments

import (
	"context"

	"github.com/mayur-keswani/strip-connect-demo/internal/domain"
	"github.com/mayur-keswani/strip-connect-demo/internal/money"
)

// CheckoutService creates gateway checkout sessions for event bookings. No
// funds move here; the booking itself is recorded by the webhook receiver.
type CheckoutService struct {
	events   EventStore
	bookings BookingStore
	gateway  Gateway
}

func NewCheckoutService(events EventStore, bookings BookingStore, gw Gateway) *CheckoutService {
	return &CheckoutService{events: events, bookings: bookings, gateway: gw}
}

type CreateSessionInput struct {
	EventID string
	UserID  string
	Origin  string
}

func (s *CheckoutService) CreateSession(ctx context.Context, in CreateSessionInput) (string, error) {
	if in.Origin == "" {
		return "", domain.ErrOriginRequired
	}

	ev, err := s.events.GetByID(ctx, in.EventID)
	if err != nil {
		return "", err
	}

	booked, err := s.bookings.ExistsByEventAndUser(ctx, ev.ID, in.UserID)
	if err != nil {
		return "", err
	}
	if booked {
		return "", domain.ErrAlreadyBooked
	}

	amount, err := money.ToCents(ev.Price)
	if err != nil {
		return "", err
	}

	return s.gateway.CreateCheckoutSession(ctx, CheckoutSessionInput{
		EventID:          ev.ID,
		UserID:           in.UserID,
		HostID:           ev.HostID,
		EventName:        ev.Name,
		EventDescription: ev.Description,
		AmountCents:      amount,
		SuccessURL:       in.Origin + "/events?success=true&session_id={CHECKOUT_SESSION_ID}",
		CancelURL:        in.Origin + "/events?success=false",
	})
}
