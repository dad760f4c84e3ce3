package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeMaintenanceRepo struct {
	promoted    []int64
	promoteErr  error
	inProgress  []int64
	promoteNows []time.Time
}

func (f *fakeMaintenanceRepo) PromoteDueScheduled(_ context.Context, now time.Time) ([]int64, error) {
	f.promoteNows = append(f.promoteNows, now)
	return f.promoted, f.promoteErr
}

func (f *fakeMaintenanceRepo) EquipmentIDsInProgress(context.Context) ([]int64, error) {
	return f.inProgress, nil
}

type fakeEquipmentRepo struct {
	markedMaintenance [][]int64
	operationalExcept [][]int64
}

func (f *fakeEquipmentRepo) MarkMaintenance(_ context.Context, ids []int64) error {
	f.markedMaintenance = append(f.markedMaintenance, ids)
	return nil
}

func (f *fakeEquipmentRepo) MarkOperationalExcept(_ context.Context, ids []int64) error {
	f.operationalExcept = append(f.operationalExcept, ids)
	return nil
}

type countingMetrics struct {
	ticks       int
	transitions map[string]int
}

func (m *countingMetrics) IncTick() { m.ticks++ }

func (m *countingMetrics) AddTransitions(transition string, n int) {
	if m.transitions == nil {
		m.transitions = map[string]int{}
	}
	m.transitions[transition] += n
}

func TestTick_PromotesDueWindows(t *testing.T) {
	maintenance := &fakeMaintenanceRepo{
		promoted:   []int64{3, 5},
		inProgress: []int64{3, 5},
	}
	equipment := &fakeEquipmentRepo{}
	metrics := &countingMetrics{}
	s := New(maintenance, equipment, time.Minute, metrics, nopLogger{})

	err := s.Tick(context.Background(), testNow)
	require.NoError(t, err)

	// Затронутое оборудование уходит в maintenance
	require.Len(t, equipment.markedMaintenance, 1)
	assert.Equal(t, []int64{3, 5}, equipment.markedMaintenance[0])

	// Обратная синхронизация щадит оборудование с активными окнами
	require.Len(t, equipment.operationalExcept, 1)
	assert.Equal(t, []int64{3, 5}, equipment.operationalExcept[0])

	assert.Equal(t, 1, metrics.ticks)
	assert.Equal(t, 2, metrics.transitions["scheduled_to_in_progress"])
}

func TestTick_NothingDue(t *testing.T) {
	maintenance := &fakeMaintenanceRepo{}
	equipment := &fakeEquipmentRepo{}
	s := New(maintenance, equipment, time.Minute, nil, nopLogger{})

	err := s.Tick(context.Background(), testNow)
	require.NoError(t, err)

	// Без переходов оборудование в maintenance не переводится,
	// но ленивая обратная синхронизация все равно выполняется
	assert.Empty(t, equipment.markedMaintenance)
	require.Len(t, equipment.operationalExcept, 1)
	assert.Empty(t, equipment.operationalExcept[0])
}

func TestTick_Idempotent(t *testing.T) {
	// Повторный тик без новых созревших окон ничего не меняет
	maintenance := &fakeMaintenanceRepo{promoted: []int64{3}, inProgress: []int64{3}}
	equipment := &fakeEquipmentRepo{}
	s := New(maintenance, equipment, time.Minute, nil, nopLogger{})

	require.NoError(t, s.Tick(context.Background(), testNow))

	// Окно уже in-progress - условный UPDATE ничего не вернет
	maintenance.promoted = nil
	require.NoError(t, s.Tick(context.Background(), testNow.Add(time.Minute)))

	assert.Len(t, equipment.markedMaintenance, 1)
	assert.Len(t, equipment.operationalExcept, 2)
	assert.Equal(t, []int64{3}, equipment.operationalExcept[1])
}

func TestTick_PromoteErrorStopsPass(t *testing.T) {
	repoErr := errors.New("deadlock detected")
	maintenance := &fakeMaintenanceRepo{promoteErr: repoErr}
	equipment := &fakeEquipmentRepo{}
	s := New(maintenance, equipment, time.Minute, nil, nopLogger{})

	err := s.Tick(context.Background(), testNow)
	assert.ErrorIs(t, err, repoErr)
	assert.Empty(t, equipment.markedMaintenance)
	assert.Empty(t, equipment.operationalExcept)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	maintenance := &fakeMaintenanceRepo{}
	equipment := &fakeEquipmentRepo{}
	s := New(maintenance, equipment, 10*time.Millisecond, nil, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	// Даем планировщику сделать стартовый тик и минимум один по таймеру
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after context cancellation")
	}

	assert.GreaterOrEqual(t, len(maintenance.promoteNows), 2)
}
