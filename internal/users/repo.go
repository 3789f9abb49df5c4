package users

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

func (r *Repository) Create(ctx context.Context, email string, name *string, passwordHash string) (domain.User, error) {
	var u domain.User
	err := r.Pool.QueryRow(
		ctx,
		`INSERT INTO users (id, email, name, password_hash)
         VALUES ($1, $2, $3, $4)
         RETURNING id, email, name, password_hash, stripe_account_id, is_onboarded, created_at`,
		uuid.NewString(), email, name, passwordHash,
	).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.StripeAccountID, &u.IsOnboarded, &u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, domain.ErrEmailTaken
		}
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.getOne(ctx, `WHERE email = $1`, email)
}

func (r *Repository) GetByID(ctx context.Context, id string) (domain.User, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *Repository) getOne(ctx context.Context, where string, arg any) (domain.User, error) {
	var u domain.User
	err := r.Pool.QueryRow(
		ctx,
		`SELECT id, email, name, password_hash, stripe_account_id, is_onboarded, created_at
         FROM users `+where,
		arg,
	).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.StripeAccountID, &u.IsOnboarded, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		if isInvalidUUID(err) {
			return domain.User{}, domain.ErrInvalidID
		}
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// SetStripeAccount persists the connected account identifier minted during
// onboarding.
func (r *Repository) SetStripeAccount(ctx context.Context, userID, accountID string) error {
	tag, err := r.Pool.Exec(
		ctx,
		`UPDATE users SET stripe_account_id = $2 WHERE id = $1`,
		userID, accountID,
	)
	if err != nil {
		return fmt.Errorf("set stripe account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// MarkOnboardedByAccount flips is_onboarded for the user owning the given
// connected account. A zero-row update is not an error: account.updated
// events can arrive for accounts this system never linked.
func (r *Repository) MarkOnboardedByAccount(ctx context.Context, accountID string) error {
	_, err := r.Pool.Exec(
		ctx,
		`UPDATE users SET is_onboarded = TRUE WHERE stripe_account_id = $1`,
		accountID,
	)
	if err != nil {
		return fmt.Errorf("mark onboarded: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isInvalidUUID(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "22P02"
}
