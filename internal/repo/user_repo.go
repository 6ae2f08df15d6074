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

// ErrNotFound is returned when a lookup matches no row, as opposed to a
// store-level fault.
var ErrNotFound = errors.New("not found")

type UserRepo struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func NewUserRepo(pool *pgxpool.Pool, timeout time.Duration) *UserRepo {
	return &UserRepo{pool: pool, timeout: timeout}
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		SELECT id, username, email, role, password_hash, created_at, updated_at
		FROM users
		WHERE username = $1
	`, username)

	return scanUser(row, "get user by username")
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		SELECT id, username, email, role, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1
	`, email)

	return scanUser(row, "get user by email")
}

// ListPICs returns the person-in-charge directory: every account's
// username and role, nothing sensitive.
func (r *UserRepo) ListPICs(ctx context.Context) ([]models.PIC, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT username, role
		FROM users
		ORDER BY username
	`)
	if err != nil {
		return nil, fmt.Errorf("list pics: %w", err)
	}
	defer rows.Close()

	pics := make([]models.PIC, 0)
	for rows.Next() {
		var pic models.PIC
		if err := rows.Scan(&pic.Username, &pic.Role); err != nil {
			return nil, fmt.Errorf("scan pic: %w", err)
		}
		pics = append(pics, pic)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pics: %w", err)
	}
	return pics, nil
}

func scanUser(row pgx.Row, op string) (*models.User, error) {
	var user models.User
	if err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Role,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &user, nil
}
