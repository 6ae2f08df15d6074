package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iwansal64/report-web-api/internal/models"
	"github.com/iwansal64/report-web-api/internal/repo"
	"github.com/iwansal64/report-web-api/internal/utils"
)

func assertAppError(t *testing.T, err error, status int) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(*utils.AppError)
	require.True(t, ok, "expected *utils.AppError, got %T", err)
	require.Equal(t, status, appErr.Status)
}

// In-memory store doubles. A non-nil failWith makes every call return
// that error, simulating a store fault.

type fakeUserStore struct {
	mu       sync.Mutex
	users    map[string]*models.User // keyed by username
	failWith error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*models.User)}
}

func (f *fakeUserStore) add(user *models.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.Username] = user
}

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	user, ok := f.users[username]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeUserStore) ListPICs(_ context.Context) ([]models.PIC, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	pics := make([]models.PIC, 0, len(f.users))
	for _, user := range f.users {
		pics = append(pics, models.PIC{Username: user.Username, Role: user.Role})
	}
	return pics, nil
}

type fakeRegistrationStore struct {
	mu       sync.Mutex
	regs     map[string]*models.Registration
	users    *fakeUserStore
	failWith error
}

func newFakeRegistrationStore(users *fakeUserStore) *fakeRegistrationStore {
	return &fakeRegistrationStore{regs: make(map[string]*models.Registration), users: users}
}

func (f *fakeRegistrationStore) Create(_ context.Context, token, email string) (*models.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	if _, exists := f.regs[token]; exists {
		return nil, errors.New("duplicate token")
	}
	reg := &models.Registration{Token: token, Email: email, CreatedAt: time.Now()}
	f.regs[token] = reg
	return reg, nil
}

func (f *fakeRegistrationStore) GetByToken(_ context.Context, token string) (*models.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	reg, ok := f.regs[token]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return reg, nil
}

func (f *fakeRegistrationStore) Redeem(_ context.Context, token, username, passwordHash, role string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	reg, ok := f.regs[token]
	if !ok || reg.ConsumedAt != nil {
		return nil, repo.ErrNotFound
	}
	now := time.Now()
	reg.ConsumedAt = &now

	user := &models.User{
		ID:           username + "-id",
		Username:     username,
		Email:        reg.Email,
		Role:         role,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	f.users.mu.Lock()
	f.users.users[username] = user
	f.users.mu.Unlock()
	return user, nil
}

type fakeReportStore struct {
	mu       sync.Mutex
	reports  map[string]models.Report
	failWith error
}

func newFakeReportStore() *fakeReportStore {
	return &fakeReportStore{reports: make(map[string]models.Report)}
}

func (f *fakeReportStore) Create(_ context.Context, report *models.Report) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	report.CreatedAt = time.Now()
	report.UpdatedAt = report.CreatedAt
	f.reports[report.ID] = *report
	return nil
}

func (f *fakeReportStore) List(_ context.Context) ([]models.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	reports := make([]models.Report, 0, len(f.reports))
	for _, report := range f.reports {
		reports = append(reports, report)
	}
	return reports, nil
}

func (f *fakeReportStore) SetStatus(_ context.Context, id, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	report, ok := f.reports[id]
	if !ok {
		return repo.ErrNotFound
	}
	report.Status = status
	f.reports[id] = report
	return nil
}

func (f *fakeReportStore) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.reports[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.reports, id)
	return nil
}

func (f *fakeReportStore) Update(_ context.Context, id string, update models.ReportUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	report, ok := f.reports[id]
	if !ok {
		return repo.ErrNotFound
	}
	report.Message = update.Message
	report.ReportType = update.ReportType
	report.FollowUp = update.FollowUp
	report.Status = update.Status
	report.PICUsername = update.PICUsername
	f.reports[id] = report
	return nil
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

type sentMail struct {
	to    string
	token string
}

func (f *fakeMailer) SendSignupToken(to, token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMail{to: to, token: token})
}

func (f *fakeMailer) sentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}
