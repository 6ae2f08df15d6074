package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iwansal64/report-web-api/internal/models"
)

type RegistrationRepo struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func NewRegistrationRepo(pool *pgxpool.Pool, timeout time.Duration) *RegistrationRepo {
	return &RegistrationRepo{pool: pool, timeout: timeout}
}

func (r *RegistrationRepo) Create(ctx context.Context, token, email string) (*models.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		INSERT INTO registrations (token, email)
		VALUES ($1, $2)
		RETURNING token, email, consumed_at, created_at
	`, token, email)

	var reg models.Registration
	if err := row.Scan(&reg.Token, &reg.Email, &reg.ConsumedAt, &reg.CreatedAt); err != nil {
		return nil, fmt.Errorf("insert registration: %w", err)
	}
	return &reg, nil
}

func (r *RegistrationRepo) GetByToken(ctx context.Context, token string) (*models.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		SELECT token, email, consumed_at, created_at
		FROM registrations
		WHERE token = $1
	`, token)

	var reg models.Registration
	if err := row.Scan(&reg.Token, &reg.Email, &reg.ConsumedAt, &reg.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get registration: %w", err)
	}
	return &reg, nil
}

// Redeem exchanges an unconsumed registration for a user account in a
// single transaction. The row lock plus the consumed stamp make double
// redemption of the same token impossible.
func (r *RegistrationRepo) Redeem(ctx context.Context, token, username, passwordHash, role string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin redeem: %w", err)
	}
	defer tx.Rollback(ctx)

	var email string
	row := tx.QueryRow(ctx, `
		SELECT email
		FROM registrations
		WHERE token = $1 AND consumed_at IS NULL
		FOR UPDATE
	`, token)
	if err := row.Scan(&email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("lock registration: %w", err)
	}

	var user models.User
	row = tx.QueryRow(ctx, `
		INSERT INTO users (username, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, username, email, role, password_hash, created_at, updated_at
	`, username, email, passwordHash, role)
	if err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Role,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}

	if _, err := tx.Exec(ctx, `
		UPDATE registrations
		SET consumed_at = NOW()
		WHERE token = $1
	`, token); err != nil {
		return nil, fmt.Errorf("consume registration: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit redeem: %w", err)
	}
	return &user, nil
}
