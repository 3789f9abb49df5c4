package payments

import (
	"context"
	"log"

	"github.com/mayur-keswani/strip-connect-demo/internal/domain"
	"github.com/mayur-keswani/strip-connect-demo/internal/money"
)

// PayoutService completes an event and pays the host their 90% share of
// collected revenue in a single transfer.
type PayoutService struct {
	events   EventStore
	bookings BookingStore
	gateway  Gateway
}

func NewPayoutService(events EventStore, bookings BookingStore, gw Gateway) *PayoutService {
	return &PayoutService{events: events, bookings: bookings, gateway: gw}
}

type CompleteEventInput struct {
	EventID string
	HostID  string
}

type CompleteEventResult struct {
	EventID     string `json:"event_id"`
	Status      string `json:"status"`
	Bookings    int64  `json:"bookings"`
	AmountCents int64  `json:"amount_cents"`
	TransferID  string `json:"transfer_id,omitempty"`
}

// CompleteEvent flips the event to completed and issues the payout. The
// conditional pending->completed update makes exactly one concurrent caller
// win, so the booking count can never be paid out twice; the transfer keyed
// by the event ID lets the gateway de-duplicate retries after partial
// failures. If the transfer fails the event is reopened so the host can
// retry.
func (s *PayoutService) CompleteEvent(ctx context.Context, in CompleteEventInput) (CompleteEventResult, error) {
	ev, err := s.events.GetByID(ctx, in.EventID)
	if err != nil {
		return CompleteEventResult{}, err
	}
	if ev.HostID != in.HostID {
		return CompleteEventResult{}, domain.ErrNotEventHost
	}
	if ev.HostStripeAccountID == "" {
		return CompleteEventResult{}, domain.ErrHostNotOnboarded
	}

	won, err := s.events.CompleteIfPending(ctx, ev.ID)
	if err != nil {
		return CompleteEventResult{}, err
	}
	if !won {
		return CompleteEventResult{}, domain.ErrEventAlreadyCompleted
	}

	count, err := s.bookings.CountByEvent(ctx, ev.ID)
	if err != nil {
		s.reopen(ev.ID)
		return CompleteEventResult{}, err
	}

	priceCents, err := money.ToCents(ev.Price)
	if err != nil {
		s.reopen(ev.ID)
		return CompleteEventResult{}, err
	}
	amount := money.HostShare(count * priceCents)

	result := CompleteEventResult{
		EventID:     ev.ID,
		Status:      string(domain.EventStatusCompleted),
		Bookings:    count,
		AmountCents: amount,
	}

	if amount > 0 {
		transferID, err := s.gateway.CreateTransfer(ctx, TransferInput{
			AmountCents:    amount,
			AccountID:      ev.HostStripeAccountID,
			IdempotencyKey: "event-payout-" + ev.ID,
		})
		if err != nil {
			s.reopen(ev.ID)
			return CompleteEventResult{}, err
		}
		result.TransferID = transferID
	}

	return result, nil
}

func (s *PayoutService) reopen(eventID string) {
	// Best-effort revert on a fresh context; the request context may
	// already be cancelled.
	if err := s.events.Reopen(context.Background(), eventID); err != nil {
		log.Printf("payout: reopen event %s failed: %v", eventID, err)
	}
}
