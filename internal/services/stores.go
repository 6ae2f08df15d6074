package services

import (
	"context"

	"github.com/iwansal64/report-web-api/internal/models"
)

// The services talk to persistence through these interfaces so tests can
// inject in-memory doubles. The pgx repos in internal/repo are the real
// implementations.

type UserStore interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ListPICs(ctx context.Context) ([]models.PIC, error)
}

type RegistrationStore interface {
	Create(ctx context.Context, token, email string) (*models.Registration, error)
	GetByToken(ctx context.Context, token string) (*models.Registration, error)
	Redeem(ctx context.Context, token, username, passwordHash, role string) (*models.User, error)
}

type ReportStore interface {
	Create(ctx context.Context, report *models.Report) error
	List(ctx context.Context) ([]models.Report, error)
	SetStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	Update(ctx context.Context, id string, update models.ReportUpdate) error
}

// TokenMailer dispatches the registration token email. Dispatch is fire
// and forget; implementations must never block the caller on delivery.
type TokenMailer interface {
	SendSignupToken(to, token string)
}
