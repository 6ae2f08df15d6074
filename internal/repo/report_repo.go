package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iwansal64/report-web-api/internal/models"
)

type ReportRepo struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func NewReportRepo(pool *pgxpool.Pool, timeout time.Duration) *ReportRepo {
	return &ReportRepo{pool: pool, timeout: timeout}
}

// Create inserts the report. The pic_username foreign key makes an
// unknown PIC fail the whole insert, so a report is never half-created.
func (r *ReportRepo) Create(ctx context.Context, report *models.Report) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		INSERT INTO reports (id, message, report_type, follow_up, status, pic_username)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`,
		report.ID,
		report.Message,
		report.ReportType,
		report.FollowUp,
		report.Status,
		report.PICUsername,
	)

	if err := row.Scan(&report.CreatedAt, &report.UpdatedAt); err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

// List returns every report. An empty store yields an empty non-nil
// slice; an error always means a store fault.
func (r *ReportRepo) List(ctx context.Context) ([]models.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT id, message, report_type, follow_up, status, pic_username, created_at, updated_at
		FROM reports
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	reports := make([]models.Report, 0)
	for rows.Next() {
		var report models.Report
		if err := rows.Scan(
			&report.ID,
			&report.Message,
			&report.ReportType,
			&report.FollowUp,
			&report.Status,
			&report.PICUsername,
			&report.CreatedAt,
			&report.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reports: %w", err)
	}
	return reports, nil
}

func (r *ReportRepo) SetStatus(ctx context.Context, id, status string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd, err := r.pool.Exec(ctx, `
		UPDATE reports
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`, status, id)
	if err != nil {
		return fmt.Errorf("set report status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ReportRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd, err := r.pool.Exec(ctx, "DELETE FROM reports WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ReportRepo) Update(ctx context.Context, id string, update models.ReportUpdate) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd, err := r.pool.Exec(ctx, `
		UPDATE reports
		SET message = $1, report_type = $2, follow_up = $3, status = $4, pic_username = $5, updated_at = NOW()
		WHERE id = $6
	`,
		update.Message,
		update.ReportType,
		update.FollowUp,
		update.Status,
		update.PICUsername,
		id,
	)
	if err != nil {
		return fmt.Errorf("update report: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
