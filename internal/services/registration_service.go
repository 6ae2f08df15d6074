package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/iwansal64/report-web-api/internal/config"
	"github.com/iwansal64/report-web-api/internal/models"
	"github.com/iwansal64/report-web-api/internal/repo"
	"github.com/iwansal64/report-web-api/internal/utils"
)

type RegistrationService struct {
	registrations RegistrationStore
	mailer        TokenMailer
	cfg           *config.Config
}

func NewRegistrationService(registrations RegistrationStore, mailer TokenMailer, cfg *config.Config) *RegistrationService {
	return &RegistrationService{registrations: registrations, mailer: mailer, cfg: cfg}
}

// StartSignup persists a pending registration and queues the token
// email. Mail delivery never fails the call; a store failure does, and
// then no email goes out.
func (s *RegistrationService) StartSignup(ctx context.Context, email string) error {
	token, err := utils.GenerateSignupToken()
	if err != nil {
		return utils.NewAppError(500, "INTERNAL_ERROR", "could not generate signup token", nil)
	}

	reg, err := s.registrations.Create(ctx, token, email)
	if err != nil {
		return utils.NewAppError(500, "INTERNAL_ERROR", "could not create registration", nil)
	}

	s.mailer.SendSignupToken(reg.Email, reg.Token)
	return nil
}

// CheckToken reports whether the token still identifies a redeemable
// registration. Unknown and already-consumed tokens look the same to the
// caller.
func (s *RegistrationService) CheckToken(ctx context.Context, token string) error {
	reg, err := s.registrations.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return utils.NewAppError(401, "UNAUTHORIZED", "invalid signup token", nil)
		}
		return utils.NewAppError(500, "INTERNAL_ERROR", "could not verify signup token", nil)
	}
	if reg.ConsumedAt != nil {
		return utils.NewAppError(401, "UNAUTHORIZED", "invalid signup token", nil)
	}
	return nil
}

// CompleteSignup redeems the token for a student account. Redemption is
// atomic at the store, so a token races to at most one account.
func (s *RegistrationService) CompleteSignup(ctx context.Context, username, password, token string) error {
	if len(password) < s.cfg.PasswordMinLen {
		msg := fmt.Sprintf("password must be at least %d characters", s.cfg.PasswordMinLen)
		return utils.NewAppError(400, "VALIDATION_ERROR", msg, nil)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return utils.NewAppError(500, "INTERNAL_ERROR", "could not secure password", nil)
	}

	if _, err := s.registrations.Redeem(ctx, token, username, string(passwordHash), models.RoleStudent); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return utils.NewAppError(401, "UNAUTHORIZED", "invalid signup token", nil)
		}
		return utils.NewAppError(500, "INTERNAL_ERROR", "could not create account", nil)
	}
	return nil
}
