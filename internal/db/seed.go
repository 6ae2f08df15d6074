package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/iwansal64/report-web-api/internal/models"
)

type SeedUser struct {
	Username string
	Email    string
	Password string
	Role     string
}

// EnsureSeedUsers creates the built-in staff accounts if they are
// missing. Public signup only ever produces students, so the first
// teacher and admin have to come from somewhere.
func EnsureSeedUsers(ctx context.Context, pool *pgxpool.Pool, timeout time.Duration) error {
	seeds := []SeedUser{
		{Username: "admin", Email: "admin@school.local", Password: "admin123", Role: models.RoleAdmin},
		{Username: "teacher1", Email: "teacher1@school.local", Password: "teacher123", Role: models.RoleTeacher},
	}

	for _, seed := range seeds {
		exists, err := userExists(ctx, pool, timeout, seed.Username)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash seed password: %w", err)
		}

		ctxInsert, cancel := context.WithTimeout(ctx, timeout)
		_, err = pool.Exec(ctxInsert, `
			INSERT INTO users (username, email, password_hash, role)
			VALUES ($1, $2, $3, $4)
		`, seed.Username, seed.Email, string(hash), seed.Role)
		cancel()
		if err != nil {
			return fmt.Errorf("insert seed user %s: %w", seed.Username, err)
		}
	}

	return nil
}

func userExists(ctx context.Context, pool *pgxpool.Pool, timeout time.Duration, username string) (bool, error) {
	ctxCheck, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	row := pool.QueryRow(ctxCheck, "SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)", username)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("check user exists: %w", err)
	}
	return exists, nil
}
