package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/iwansal64/report-web-api/internal/db/migrations"
)

// Migrate applies the embedded schema migrations. goose wants a
// database/sql handle, so it gets its own short-lived pgx stdlib
// connection separate from the pool.
func Migrate(ctx context.Context, databaseURL string) error {
	conn, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("open migration conn: %w", err)
	}
	defer conn.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, conn, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
