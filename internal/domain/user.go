package domain

import "time"

// User represents a persisted user record. A user becomes a host once they
// link a Stripe connected account and finish onboarding.
type User struct {
	ID              string    `db:"id" json:"id"`
	Email           string    `db:"email" json:"email"`
	Name            *string   `db:"name" json:"name,omitempty"`
	PasswordHash    string    `db:"password_hash" json:"-"`
	StripeAccountID *string   `db:"stripe_account_id" json:"stripe_account_id,omitempty"`
	IsOnboarded     bool      `db:"is_onboarded" json:"is_onboarded"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// UserSummary is the shape the auth endpoints return. Never carries the
// password hash.
type UserSummary struct {
	ID              string  `json:"id"`
	Email           string  `json:"email"`
	Name            *string `json:"name,omitempty"`
	StripeAccountID *string `json:"stripe_account_id,omitempty"`
	IsOnboarded     bool    `json:"is_onboarded"`
}

func (u User) Summary() UserSummary {
	return UserSummary{
		ID:              u.ID,
		Email:           u.Email,
		Name:            u.Name,
		StripeAccountID: u.StripeAccountID,
		IsOnboarded:     u.IsOnboarded,
	}
}
