package domain

import "time"

type EventStatus string

const (
	EventStatusPending   EventStatus = "pending"
	EventStatusCompleted EventStatus = "completed"
)

// Event is a ticketed event owned by a host. Price is in decimal currency
// units; conversion to cents happens only at the Stripe boundary.
type Event struct {
	ID          string      `db:"id" json:"id"`
	Name        string      `db:"name" json:"name"`
	Description string      `db:"description" json:"description"`
	Price       float64     `db:"price" json:"price"`
	Date        time.Time   `db:"date" json:"date"`
	Status      EventStatus `db:"status" json:"status"`
	HostID      string      `db:"host_id" json:"host_id"`

	// Denormalized from the host row; empty until the host links an account.
	HostStripeAccountID string `db:"host_stripe_account_id" json:"-"`
}

// EventWithBooking annotates an event with the requesting user's booking
// state for the listing endpoint.
type EventWithBooking struct {
	Event
	Booked bool `json:"booked"`
}
