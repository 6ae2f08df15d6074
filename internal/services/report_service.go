package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/iwansal64/report-web-api/internal/models"
	"github.com/iwansal64/report-web-api/internal/utils"
)

type ReportService struct {
	reports ReportStore
	users   UserStore
}

func NewReportService(reports ReportStore, users UserStore) *ReportService {
	return &ReportService{reports: reports, users: users}
}

// Create files a new report against the named PIC. New reports always
// start open.
func (s *ReportService) Create(ctx context.Context, message, picUsername, reportType, followUp string) error {
	report := &models.Report{
		ID:          uuid.NewString(),
		Message:     message,
		ReportType:  reportType,
		FollowUp:    followUp,
		Status:      models.ReportStatusOpen,
		PICUsername: picUsername,
	}

	if err := s.reports.Create(ctx, report); err != nil {
		return utils.NewAppError(500, "INTERNAL_ERROR", "could not create report", nil)
	}
	return nil
}

func (s *ReportService) List(ctx context.Context) ([]models.Report, error) {
	reports, err := s.reports.List(ctx)
	if err != nil {
		return nil, utils.NewAppError(500, "INTERNAL_ERROR", "could not list reports", nil)
	}
	return reports, nil
}

// SetStatus updates only the status field. Any status value is reachable
// from any other; there is no transition graph.
func (s *ReportService) SetStatus(ctx context.Context, id, status string) error {
	if err := s.reports.SetStatus(ctx, id, status); err != nil {
		return utils.NewAppError(500, "INTERNAL_ERROR", "could not change report status", nil)
	}
	return nil
}

func (s *ReportService) Delete(ctx context.Context, id string) error {
	if err := s.reports.Delete(ctx, id); err != nil {
		return utils.NewAppError(500, "INTERNAL_ERROR", "could not delete report", nil)
	}
	return nil
}

func (s *ReportService) Update(ctx context.Context, id string, update models.ReportUpdate) error {
	if err := s.reports.Update(ctx, id, update); err != nil {
		return utils.NewAppError(500, "INTERNAL_ERROR", "could not update report", nil)
	}
	return nil
}

func (s *ReportService) ListPICs(ctx context.Context) ([]models.PIC, error) {
	pics, err := s.users.ListPICs(ctx)
	if err != nil {
		return nil, utils.NewAppError(500, "INTERNAL_ERROR", "could not list PICs", nil)
	}
	return pics, nil
}
