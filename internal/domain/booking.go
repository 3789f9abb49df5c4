package domain

import "time"

type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "paid"
	PaymentStatusFailed PaymentStatus = "failed"
)

// Booking records one paid seat at an event. Created exactly once per
// completed checkout session and immutable apart from payment_status.
type Booking struct {
	ID                string        `db:"id" json:"id"`
	EventID           string        `db:"event_id" json:"event_id"`
	UserID            string        `db:"user_id" json:"user_id"`
	CheckoutSessionID string        `db:"checkout_session_id" json:"checkout_session_id"`
	PaymentIntentID   string        `db:"payment_intent_id" json:"payment_intent_id"`
	PaymentStatus     PaymentStatus `db:"payment_status" json:"payment_status"`
	CreatedAt         time.Time     `db:"created_at" json:"created_at"`
}
