package bookings

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mayur-keswani/strip-connect-demo/internal/domain"
)

type Repository struct {
	Pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{Pool: pool}
}

// CreateFromCheckout inserts the booking recorded for a completed checkout
// session. Unique keys on (event_id, user_id), checkout_session_id and
// payment_intent_id make webhook redelivery a no-op; the bool reports
// whether a row was actually created.
func (r *Repository) CreateFromCheckout(ctx context.Context, b domain.Booking) (bool, error) {
	tag, err := r.Pool.Exec(
		ctx,
		`INSERT INTO bookings (event_id, user_id, checkout_session_id, payment_intent_id, payment_status)
         VALUES ($1, $2, $3, NULLIF($4, ''), 'paid')
         ON CONFLICT DO NOTHING`,
		b.EventID, b.UserID, b.CheckoutSessionID, b.PaymentIntentID,
	)
	if err != nil {
		return false, fmt.Errorf("create booking: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) ExistsByEventAndUser(ctx context.Context, eventID, userID string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM bookings WHERE event_id = $1 AND user_id = $2)`,
		eventID, userID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("booking exists: %w", err)
	}
	return exists, nil
}

func (r *Repository) CountByEvent(ctx context.Context, eventID string) (int64, error) {
	var n int64
	err := r.Pool.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM bookings WHERE event_id = $1`,
		eventID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return n, nil
}

// SetPaymentStatusByIntent updates the payment status recorded for a
// booking. Zero rows is fine: payment_intent events can arrive before the
// checkout.session.completed that creates the booking.
func (r *Repository) SetPaymentStatusByIntent(ctx context.Context, paymentIntentID string, status domain.PaymentStatus) error {
	_, err := r.Pool.Exec(
		ctx,
		`UPDATE bookings SET payment_status = $2 WHERE payment_intent_id = $1`,
		paymentIntentID, string(status),
	)
	if err != nil {
		return fmt.Errorf("set payment status: %w", err)
	}
	return nil
}
