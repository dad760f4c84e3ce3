package maintenance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabworks/FabLab-BookingService/internal/domain"
	maintenanceRepo "github.com/fabworks/FabLab-BookingService/internal/infra/storage/maintenance"
	"github.com/fabworks/FabLab-BookingService/internal/service/maintenance/models"
	"github.com/fabworks/FabLab-BookingService/pkg/ptr"
)

var testNow = time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTimeProvider struct{}

func (fixedTimeProvider) Now() time.Time { return testNow }

type fakeMaintenanceRepo struct {
	byID          map[int64]*domain.MaintenanceWindow
	hasInProgress bool

	statusSet     *domain.MaintenanceStatus
	statusSetNow  *time.Time
	detailsUpdate *maintenanceRepo.DetailsUpdate
}

func (f *fakeMaintenanceRepo) GetByID(_ context.Context, id int64) (*domain.MaintenanceWindow, error) {
	w, ok := f.byID[id]
	if !ok {
		return nil, maintenanceRepo.ErrMaintenanceNotFound
	}
	return w, nil
}

func (f *fakeMaintenanceRepo) GetByEquipment(context.Context, int64) ([]*domain.MaintenanceWindow, error) {
	windows := make([]*domain.MaintenanceWindow, 0, len(f.byID))
	for _, w := range f.byID {
		windows = append(windows, w)
	}
	return windows, nil
}

func (f *fakeMaintenanceRepo) UpdateStatus(_ context.Context, _ int64, status domain.MaintenanceStatus, now time.Time) error {
	f.statusSet = &status
	f.statusSetNow = &now
	return nil
}

func (f *fakeMaintenanceRepo) UpdateDetails(_ context.Context, _ int64, upd maintenanceRepo.DetailsUpdate, _ time.Time) error {
	f.detailsUpdate = &upd
	return nil
}

func (f *fakeMaintenanceRepo) HasInProgressForEquipment(context.Context, int64) (bool, error) {
	return f.hasInProgress, nil
}

type fakeEquipmentRepo struct {
	statuses []domain.EquipmentStatus
}

func (f *fakeEquipmentRepo) SetStatus(_ context.Context, _ int64, status domain.EquipmentStatus) error {
	f.statuses = append(f.statuses, status)
	return nil
}

func inProgressWindow(id int64) *domain.MaintenanceWindow {
	start := testNow.Add(-time.Hour)
	return &domain.MaintenanceWindow{
		ID:          id,
		EquipmentID: 1,
		Type:        domain.MaintenanceCorrective,
		Status:      domain.MaintenanceInProgress,
		Start:       &start,
	}
}

func newTestService(m *fakeMaintenanceRepo, e *fakeEquipmentRepo) *Service {
	return NewService(m, e, fixedTimeProvider{}, nopLogger{})
}

func TestUpdateStatus_CompletedRevertsEquipment(t *testing.T) {
	repo := &fakeMaintenanceRepo{
		byID:          map[int64]*domain.MaintenanceWindow{1: inProgressWindow(1)},
		hasInProgress: false,
	}
	equipment := &fakeEquipmentRepo{}
	svc := newTestService(repo, equipment)

	err := svc.UpdateStatus(context.Background(), 1, "completed")
	require.NoError(t, err)

	// Репозиторий получает фиксированное "сейчас" для простановки end_at
	require.NotNil(t, repo.statusSetNow)
	assert.Equal(t, testNow, *repo.statusSetNow)
	assert.Equal(t, domain.MaintenanceCompleted, *repo.statusSet)

	// Активных окон не осталось - оборудование возвращается в operational
	assert.Equal(t, []domain.EquipmentStatus{domain.EquipmentOperational}, equipment.statuses)
}

func TestUpdateStatus_CompletedKeepsMaintenanceWhileOtherWindowsActive(t *testing.T) {
	repo := &fakeMaintenanceRepo{
		byID:          map[int64]*domain.MaintenanceWindow{1: inProgressWindow(1)},
		hasInProgress: true,
	}
	equipment := &fakeEquipmentRepo{}
	svc := newTestService(repo, equipment)

	err := svc.UpdateStatus(context.Background(), 1, "completed")
	require.NoError(t, err)

	// У оборудования еще идет другое обслуживание - статус не трогаем
	assert.Empty(t, equipment.statuses)
}

func TestUpdateStatus_InProgressForcesMaintenance(t *testing.T) {
	start := testNow.Add(-time.Hour)
	end := testNow.Add(time.Hour)
	repo := &fakeMaintenanceRepo{byID: map[int64]*domain.MaintenanceWindow{1: {
		ID: 1, EquipmentID: 1,
		Type: domain.MaintenancePreventive, Status: domain.MaintenanceScheduled,
		Start: &start, End: &end,
	}}}
	equipment := &fakeEquipmentRepo{}
	svc := newTestService(repo, equipment)

	err := svc.UpdateStatus(context.Background(), 1, "in-progress")
	require.NoError(t, err)

	assert.Equal(t, []domain.EquipmentStatus{domain.EquipmentMaintenance}, equipment.statuses)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc := newTestService(&fakeMaintenanceRepo{}, &fakeEquipmentRepo{})

	err := svc.UpdateStatus(context.Background(), 1, "paused")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc := newTestService(&fakeMaintenanceRepo{byID: map[int64]*domain.MaintenanceWindow{}}, &fakeEquipmentRepo{})

	err := svc.UpdateStatus(context.Background(), 404, "completed")
	assert.ErrorIs(t, err, ErrMaintenanceNotFound)
}

func TestUpdateDetails_PartialUpdate(t *testing.T) {
	repo := &fakeMaintenanceRepo{byID: map[int64]*domain.MaintenanceWindow{1: inProgressWindow(1)}}
	svc := newTestService(repo, &fakeEquipmentRepo{})

	err := svc.UpdateDetails(context.Background(), 1, &models.UpdateDetailsRequest{
		DurationMinutes: ptr.Ptr(90),
		Cost:            ptr.Ptr(120.50),
	})
	require.NoError(t, err)

	require.NotNil(t, repo.detailsUpdate)
	require.NotNil(t, repo.detailsUpdate.DurationMinutes)
	assert.Equal(t, 90, *repo.detailsUpdate.DurationMinutes)
	require.NotNil(t, repo.detailsUpdate.Cost)
	assert.Equal(t, 120.50, *repo.detailsUpdate.Cost)
	assert.Nil(t, repo.detailsUpdate.Notes)
	assert.Nil(t, repo.detailsUpdate.Status)
}

func TestUpdateDetails_CompleteAndForceOperational(t *testing.T) {
	repo := &fakeMaintenanceRepo{
		byID:          map[int64]*domain.MaintenanceWindow{1: inProgressWindow(1)},
		hasInProgress: false,
	}
	equipment := &fakeEquipmentRepo{}
	svc := newTestService(repo, equipment)

	err := svc.UpdateDetails(context.Background(), 1, &models.UpdateDetailsRequest{
		Status:                  ptr.Ptr("completed"),
		SetEquipmentOperational: true,
	})
	require.NoError(t, err)

	require.NotNil(t, repo.detailsUpdate.Status)
	assert.Equal(t, domain.MaintenanceCompleted, *repo.detailsUpdate.Status)
	assert.Contains(t, equipment.statuses, domain.EquipmentOperational)
}

func TestUpdateDetails_Validation(t *testing.T) {
	svc := newTestService(&fakeMaintenanceRepo{}, &fakeEquipmentRepo{})

	tests := []struct {
		name string
		req  *models.UpdateDetailsRequest
		want error
	}{
		{"negative duration", &models.UpdateDetailsRequest{DurationMinutes: ptr.Ptr(-5)}, ErrInvalidInput},
		{"negative cost", &models.UpdateDetailsRequest{Cost: ptr.Ptr(-1.0)}, ErrInvalidInput},
		{"unknown status", &models.UpdateDetailsRequest{Status: ptr.Ptr("paused")}, ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.UpdateDetails(context.Background(), 1, tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
