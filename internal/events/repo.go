package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mayur-keswani/strip-connect-demo/internal/domain"
)

type Repository struct {
	Pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{Pool: pool}
}

func (r *Repository) Insert(ctx context.Context, ev *domain.Event) (string, error) {
	var id string
	err := r.Pool.QueryRow(
		ctx,
		`INSERT INTO events (id, name, description, price, date, status, host_id)
         VALUES ($1, $2, $3, $4, $5, 'pending', $6)
         RETURNING id`,
		uuid.NewString(), ev.Name, ev.Description, ev.Price, ev.Date, ev.HostID,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("insert event: %w", err)
	}
	return id, nil
}

// GetByID returns the event joined with the host's connected account
// identifier, which the checkout and payout flows both need.
func (r *Repository) GetByID(ctx context.Context, id string) (domain.Event, error) {
	var ev domain.Event
	var status string
	var hostAcct *string
	err := r.Pool.QueryRow(
		ctx,
		`SELECT e.id, e.name, e.description, e.price, e.date, e.status, e.host_id, u.stripe_account_id
         FROM events e
         JOIN users u ON u.id = e.host_id
         WHERE e.id = $1`,
		id,
	).Scan(&ev.ID, &ev.Name, &ev.Description, &ev.Price, &ev.Date, &status, &ev.HostID, &hostAcct)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Event{}, domain.ErrEventNotFound
		}
		if isInvalidUUID(err) {
			return domain.Event{}, domain.ErrEventNotFound
		}
		return domain.Event{}, fmt.Errorf("get event: %w", err)
	}
	ev.Status = domain.EventStatus(status)
	if hostAcct != nil {
		ev.HostStripeAccountID = *hostAcct
	}
	return ev, nil
}

// ListForUser returns all events ordered by date, each annotated with
// whether the given user already holds a booking.
func (r *Repository) ListForUser(ctx context.Context, userID string) ([]domain.EventWithBooking, error) {
	rows, err := r.Pool.Query(
		ctx,
		`SELECT e.id, e.name, e.description, e.price, e.date, e.status, e.host_id,
                (b.id IS NOT NULL) AS booked
         FROM events e
         LEFT JOIN bookings b ON b.event_id = e.id AND b.user_id = $1
         ORDER BY e.date ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var out []domain.EventWithBooking
	for rows.Next() {
		var ev domain.EventWithBooking
		var status string
		if err := rows.Scan(
			&ev.ID,
			&ev.Name,
			&ev.Description,
			&ev.Price,
			&ev.Date,
			&status,
			&ev.HostID,
			&ev.Booked,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		ev.Status = domain.EventStatus(status)
		out = append(out, ev)
	}
	return out, rows.Err()
}

// CompleteIfPending flips the event to completed only when it is still
// pending. The conditional update is what serializes concurrent payout
// attempts: exactly one caller sees true.
func (r *Repository) CompleteIfPending(ctx context.Context, eventID string) (bool, error) {
	tag, err := r.Pool.Exec(
		ctx,
		`UPDATE events SET status = 'completed' WHERE id = $1 AND status = 'pending'`,
		eventID,
	)
	if err != nil {
		return false, fmt.Errorf("complete event: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// Reopen reverts a completed event to pending after a failed transfer so
// the host can retry.
func (r *Repository) Reopen(ctx context.Context, eventID string) error {
	_, err := r.Pool.Exec(
		ctx,
		`UPDATE events SET status = 'pending' WHERE id = $1 AND status = 'completed'`,
		eventID,
	)
	if err != nil {
		return fmt.Errorf("reopen event: %w", err)
	}
	return nil
}

func isInvalidUUID(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "22P02"
}
