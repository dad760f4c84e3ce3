package equipment

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/fabworks/FabLab-BookingService/internal/domain"
	"github.com/fabworks/FabLab-BookingService/pkg/psqlbuilder"
	"github.com/fabworks/FabLab-BookingService/pkg/txmanager"
)

const equipmentTable = "equipment"

var equipmentColumns = []string{
	"id",
	"name",
	"category",
	"description",
	"capacity",
	"booking_minutes",
	"status",
	"key_features",
	"tech_specs",
	"usage_guidelines",
	"safety_requirements",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с оборудованием
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория оборудования
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись оборудования
// Списки хранятся как text[], технические характеристики - как jsonb
func (r *Repository) Create(ctx context.Context, e *domain.Equipment) (*domain.Equipment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	specs, err := json.Marshal(e.TechSpecs)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal tech specs: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert(equipmentTable).
		Columns(
			"name",
			"category",
			"description",
			"capacity",
			"booking_minutes",
			"status",
			"key_features",
			"tech_specs",
			"usage_guidelines",
			"safety_requirements",
		).
		Values(
			e.Name,
			e.Category,
			e.Description,
			e.Capacity,
			e.BookingMinutes,
			e.Status,
			pq.Array(e.KeyFeatures),
			specs,
			pq.Array(e.UsageGuidelines),
			pq.Array(e.SafetyRequirements),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&e.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	e.CreatedAt = createdAt.Time
	e.UpdatedAt = updatedAt.Time

	return e, nil
}

// GetByID получает оборудование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(equipmentColumns...).
		From(equipmentTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	e, err := scanEquipment(row)
	if err == sql.ErrNoRows {
		return nil, ErrEquipmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan equipment: %v", ErrScanRow, err)
	}

	return e, nil
}

// List получает все оборудование, сначала новое
func (r *Repository) List(ctx context.Context) ([]*domain.Equipment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(equipmentColumns...).
		From(equipmentTable).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]*domain.Equipment, 0)
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		items = append(items, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}

// SetStatus выставляет операционный статус оборудования
func (r *Repository) SetStatus(ctx context.Context, id int64, status domain.EquipmentStatus) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(equipmentTable).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrEquipmentNotFound
	}

	return nil
}

// MarkMaintenance переводит указанное оборудование в статус maintenance
// Пустой список - no-op
func (r *Repository) MarkMaintenance(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(equipmentTable).
		Set("status", domain.EquipmentMaintenance).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": ids}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkMaintenance - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: MarkMaintenance - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// MarkOperationalExcept возвращает в operational все оборудование,
// КРОМЕ перечисленного (у которого еще идет обслуживание)
// Используется планировщиком для ленивой синхронизации статусов
func (r *Repository) MarkOperationalExcept(ctx context.Context, inMaintenanceIDs []int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update(equipmentTable).
		Set("status", domain.EquipmentOperational).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": domain.EquipmentMaintenance})

	if len(inMaintenanceIDs) > 0 {
		updateBuilder = updateBuilder.Where(squirrel.NotEq{"id": inMaintenanceIDs})
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkOperationalExcept - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: MarkOperationalExcept - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanEquipment сканирует одну строку в оборудование
func scanEquipment(row rowScanner) (*domain.Equipment, error) {
	var e domain.Equipment
	var specs []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Category,
		&e.Description,
		&e.Capacity,
		&e.BookingMinutes,
		&e.Status,
		pq.Array(&e.KeyFeatures),
		&specs,
		pq.Array(&e.UsageGuidelines),
		pq.Array(&e.SafetyRequirements),
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(specs) > 0 {
		if err := json.Unmarshal(specs, &e.TechSpecs); err != nil {
			return nil, fmt.Errorf("unmarshal tech specs: %w", err)
		}
	}
	e.CreatedAt = createdAt.Time
	e.UpdatedAt = updatedAt.Time

	return &e, nil
}
