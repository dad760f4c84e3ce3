package maintenance

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/fabworks/FabLab-BookingService/internal/domain"
	"github.com/fabworks/FabLab-BookingService/pkg/psqlbuilder"
	"github.com/fabworks/FabLab-BookingService/pkg/txmanager"
)

const maintenanceTable = "maintenance_windows"

var maintenanceColumns = []string{
	"id",
	"equipment_id",
	"type",
	"start_at",
	"end_at",
	"status",
	"assignee",
	"notes",
	"duration_minutes",
	"cost",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с окнами обслуживания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория обслуживания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает окно обслуживания
func (r *Repository) Create(ctx context.Context, m *domain.MaintenanceWindow) (*domain.MaintenanceWindow, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(maintenanceTable).
		Columns(
			"equipment_id",
			"type",
			"start_at",
			"end_at",
			"status",
			"assignee",
			"notes",
		).
		Values(
			m.EquipmentID,
			m.Type,
			m.Start,
			m.End,
			m.Status,
			m.Assignee,
			m.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&m.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	m.CreatedAt = createdAt.Time
	m.UpdatedAt = updatedAt.Time

	return m, nil
}

// GetByID получает окно обслуживания по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.MaintenanceWindow, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(maintenanceColumns...).
		From(maintenanceTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	m, err := scanWindow(row)
	if err == sql.ErrNoRows {
		return nil, ErrMaintenanceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan window: %v", ErrScanRow, err)
	}

	return m, nil
}

// GetByEquipment получает все окна обслуживания оборудования, сначала новые
func (r *Repository) GetByEquipment(ctx context.Context, equipmentID int64) ([]*domain.MaintenanceWindow, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(maintenanceColumns...).
		From(maintenanceTable).
		Where(squirrel.Eq{"equipment_id": equipmentID}).
		OrderBy("start_at DESC NULLS LAST").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByEquipment - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEquipment - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanWindows(rows)
}

// GetNonCancelledWindows получает неотмененные окна обслуживания оборудования
// Используется детектором конфликтов при создании запланированного обслуживания
func (r *Repository) GetNonCancelledWindows(ctx context.Context, equipmentID int64) ([]*domain.MaintenanceWindow, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(maintenanceColumns...).
		From(maintenanceTable).
		Where(squirrel.Eq{"equipment_id": equipmentID}).
		Where(squirrel.NotEq{"status": domain.MaintenanceCancelled}).
		OrderBy("start_at ASC NULLS LAST").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetNonCancelledWindows - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetNonCancelledWindows - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanWindows(rows)
}

// PromoteDueScheduled переводит в in-progress все запланированные окна,
// чье время пришло: start_at <= now < end_at
// Условный UPDATE, скоуп по текущему статусу и окну - безопасен при
// конкурентных тиках и идемпотентен
// Возвращает ID оборудования, затронутого переводами (с дедупликацией)
func (r *Repository) PromoteDueScheduled(ctx context.Context, now time.Time) ([]int64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(maintenanceTable).
		Set("status", domain.MaintenanceInProgress).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": domain.MaintenanceScheduled}).
		Where(squirrel.NotEq{"start_at": nil}).
		Where(squirrel.NotEq{"end_at": nil}).
		Where(squirrel.LtOrEq{"start_at": now}).
		Where(squirrel.Gt{"end_at": now}).
		Suffix("RETURNING equipment_id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: PromoteDueScheduled - build update query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: PromoteDueScheduled - execute update: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	seen := make(map[int64]struct{})
	equipmentIDs := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: PromoteDueScheduled - scan equipment_id: %v", ErrScanRow, err)
		}
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			equipmentIDs = append(equipmentIDs, id)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: PromoteDueScheduled - rows error: %v", ErrScanRow, err)
	}

	return equipmentIDs, nil
}

// EquipmentIDsInProgress возвращает ID оборудования, у которого есть
// хотя бы одно окно обслуживания в статусе in-progress
func (r *Repository) EquipmentIDsInProgress(ctx context.Context) ([]int64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT equipment_id").
		From(maintenanceTable).
		Where(squirrel.Eq{"status": domain.MaintenanceInProgress}).
		OrderBy("equipment_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: EquipmentIDsInProgress - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: EquipmentIDsInProgress - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: EquipmentIDsInProgress - scan equipment_id: %v", ErrScanRow, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: EquipmentIDsInProgress - rows error: %v", ErrScanRow, err)
	}

	return ids, nil
}

// HasInProgressForEquipment проверяет, осталось ли у оборудования
// хотя бы одно окно в статусе in-progress
func (r *Repository) HasInProgressForEquipment(ctx context.Context, equipmentID int64) (bool, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From(maintenanceTable).
		Where(squirrel.Eq{
			"equipment_id": equipmentID,
			"status":       domain.MaintenanceInProgress,
		}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: HasInProgressForEquipment - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: HasInProgressForEquipment - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

// UpdateStatus обновляет статус окна обслуживания
// При переводе в completed фиксирует реальное время окончания (end_at = now) -
// оно используется для учета длительности и стоимости
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.MaintenanceStatus, now time.Time) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update(maintenanceTable).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if status == domain.MaintenanceCompleted {
		updateBuilder = updateBuilder.Set("end_at", now)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrMaintenanceNotFound
	}

	return nil
}

// DetailsUpdate набор опциональных полей для обновления деталей обслуживания
type DetailsUpdate struct {
	DurationMinutes *int
	Cost            *float64
	Notes           *string
	Status          *domain.MaintenanceStatus
}

// UpdateDetails обновляет учетные поля окна обслуживания
// Обновляются только переданные (не-nil) поля
func (r *Repository) UpdateDetails(ctx context.Context, id int64, upd DetailsUpdate, now time.Time) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update(maintenanceTable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if upd.DurationMinutes != nil {
		updateBuilder = updateBuilder.Set("duration_minutes", *upd.DurationMinutes)
	}
	if upd.Cost != nil {
		updateBuilder = updateBuilder.Set("cost", *upd.Cost)
	}
	if upd.Notes != nil {
		updateBuilder = updateBuilder.Set("notes", *upd.Notes)
	}
	if upd.Status != nil {
		updateBuilder = updateBuilder.Set("status", *upd.Status)
		if *upd.Status == domain.MaintenanceCompleted {
			updateBuilder = updateBuilder.Set("end_at", now)
		}
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateDetails - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateDetails - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateDetails - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrMaintenanceNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanWindow сканирует одну строку в окно обслуживания
func scanWindow(row rowScanner) (*domain.MaintenanceWindow, error) {
	var m domain.MaintenanceWindow
	var startAt, endAt, createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&m.ID,
		&m.EquipmentID,
		&m.Type,
		&startAt,
		&endAt,
		&m.Status,
		&m.Assignee,
		&m.Notes,
		&m.DurationMinutes,
		&m.Cost,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if startAt.Valid {
		m.Start = &startAt.Time
	}
	if endAt.Valid {
		m.End = &endAt.Time
	}
	m.CreatedAt = createdAt.Time
	m.UpdatedAt = updatedAt.Time

	return &m, nil
}

// scanWindows сканирует результаты запроса в слайс окон обслуживания
func scanWindows(rows *sql.Rows) ([]*domain.MaintenanceWindow, error) {
	windows := make([]*domain.MaintenanceWindow, 0)

	for rows.Next() {
		m, err := scanWindow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanWindows - scan row: %v", ErrScanRow, err)
		}
		windows = append(windows, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanWindows - rows error: %v", ErrScanRow, err)
	}

	return windows, nil
}
