// Package scheduler фоновый планировщик статусов обслуживания
// Периодический тик переводит созревшие scheduled-окна в in-progress и
// синхронизирует операционный статус оборудования
package scheduler

import (
	"context"
	"time"
)

const (
	// transitionScheduledToInProgress метка перехода для метрик
	transitionScheduledToInProgress = "scheduled_to_in_progress"
)

// Scheduler периодическая фоновая задача с явным жизненным циклом
// Тик вынесен в отдельный метод и принимает "now" параметром -
// детерминированное тестирование без зависимости от настенных часов
type Scheduler struct {
	maintenanceRepo MaintenanceRepository
	equipmentRepo   EquipmentRepository
	interval        time.Duration
	metrics         Metrics
	logger          Logger
}

// New создает планировщик с заданным интервалом тика
func New(
	maintenanceRepo MaintenanceRepository,
	equipmentRepo EquipmentRepository,
	interval time.Duration,
	metrics Metrics,
	logger Logger,
) *Scheduler {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &Scheduler{
		maintenanceRepo: maintenanceRepo,
		equipmentRepo:   equipmentRepo,
		interval:        interval,
		metrics:         metrics,
		logger:          logger,
	}
}

// Run запускает цикл планировщика: один тик сразу при старте, затем
// с фиксированным интервалом до отмены контекста
// Блокирует вызывающую горутину
func (s *Scheduler) Run(ctx context.Context) {
	s.logger.Info("Scheduler: started with interval %s", s.interval)

	if err := s.Tick(ctx, time.Now()); err != nil {
		s.logger.Error("Scheduler: initial tick failed: %v", err)
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Scheduler: stopped")
			return
		case now := <-ticker.C:
			if err := s.Tick(ctx, now); err != nil {
				// Ошибка тика не фатальна: состояние переоценивается на следующем
				// интервале, отдельного механизма ретраев нет
				s.logger.Error("Scheduler: tick failed: %v", err)
			}
		}
	}
}

// Tick выполняет один проход планировщика
// Идемпотентен: без созревших переходов повторный запуск ничего не меняет;
// безопасен при конкурентных запусках, так как каждый переход - условный
// UPDATE со скоупом по текущему статусу и временному окну
// Окна никогда не завершаются автоматически: реальное время окончания
// фиксируется только явным действием администратора
func (s *Scheduler) Tick(ctx context.Context, now time.Time) error {
	s.metrics.IncTick()

	// 1. Переводим созревшие scheduled-окна (start <= now < end) в in-progress
	promoted, err := s.maintenanceRepo.PromoteDueScheduled(ctx, now)
	if err != nil {
		return err
	}

	if len(promoted) > 0 {
		s.metrics.AddTransitions(transitionScheduledToInProgress, len(promoted))
		s.logger.Info("Scheduler: promoted maintenance windows to in-progress for %d equipment", len(promoted))

		// 2. Оборудование с активным обслуживанием уходит в maintenance
		if err := s.equipmentRepo.MarkMaintenance(ctx, promoted); err != nil {
			return err
		}
	}

	// 3. Ленивая синхронизация в обратную сторону: оборудование без единого
	// in-progress окна возвращается в operational - подбирает записи,
	// разъехавшиеся со статусами окон вне планировщика
	inProgress, err := s.maintenanceRepo.EquipmentIDsInProgress(ctx)
	if err != nil {
		return err
	}

	return s.equipmentRepo.MarkOperationalExcept(ctx, inProgress)
}
