package payments

import (
	"context"

	"github.com/mayur-keswani/strip-connect-demo/internal/domain"
)

// EventStore is the slice of the events repository the payment flows need.
type EventStore interface {
	GetByID(ctx context.Context, id string) (domain.Event, error)
	CompleteIfPending(ctx context.Context, eventID string) (bool, error)
	Reopen(ctx context.Context, eventID string) error
}

type BookingStore interface {
	CreateFromCheckout(ctx context.Context, b domain.Booking) (bool, error)
	ExistsByEventAndUser(ctx context.Context, eventID, userID string) (bool, error)
	CountByEvent(ctx context.Context, eventID string) (int64, error)
	SetPaymentStatusByIntent(ctx context.Context, paymentIntentID string, status domain.PaymentStatus) error
}

type UserStore interface {
	GetByID(ctx context.Context, id string) (domain.User, error)
	SetStripeAccount(ctx context.Context, userID, accountID string) error
	MarkOnboardedByAccount(ctx context.Context, accountID string) error
}
