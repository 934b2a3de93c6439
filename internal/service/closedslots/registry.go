package closedslots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-StageCalendar/internal/domain"
	"github.com/m04kA/SMC-StageCalendar/internal/infra/storage/snapshot"
)

// Registry реестр административно закрытых слотов.
// Закрытие слота не отменяет существующее бронирование: это независимые оси.
type Registry struct {
	store     Store
	gate      Authorizer
	horizon   Horizon
	metrics   Metrics
	batchSize int
	logger    Logger
}

// Option настройка реестра
type Option func(*Registry)

// WithMetrics подключает метрики пакетных операций
func WithMetrics(m Metrics) Option {
	return func(r *Registry) {
		r.metrics = m
	}
}

// NewRegistry создает новый экземпляр реестра
func NewRegistry(
	store Store,
	gate Authorizer,
	horizon Horizon,
	batchSize int,
	logger Logger,
	opts ...Option,
) *Registry {
	if batchSize <= 0 {
		batchSize = domain.DefaultBulkBatchSize
	}
	r := &Registry{
		store:     store,
		gate:      gate,
		horizon:   horizon,
		batchSize: batchSize,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// IsClosed проверяет, закрыт ли слот на дату
func (r *Registry) IsClosed(date domain.DateKey, slot domain.SlotID) bool {
	return r.store.View().IsClosed(date, slot)
}

// ClosedOn возвращает закрытые слоты даты в каноническом порядке
func (r *Registry) ClosedOn(date domain.DateKey) []domain.SlotID {
	state := r.store.View()
	closed := make([]domain.SlotID, 0, len(domain.Slots))
	for _, s := range domain.Slots {
		if state.IsClosed(date, s.ID) {
			closed = append(closed, s.ID)
		}
	}
	return closed
}

// SetClosed закрывает или открывает один слот. Повторный вызов идемпотентен.
func (r *Registry) SetClosed(ctx context.Context, date domain.DateKey, slot domain.SlotID, closed bool) error {
	if err := r.checkPoint(date, slot); err != nil {
		r.logger.Warn("SetClosed: date=%s slot=%s rejected: %v", date, slot, err)
		return err
	}

	err := r.store.Mutate(ctx, func(state *snapshot.State) error {
		state.SetClosed(date, slot, closed)
		return nil
	})
	if err != nil {
		r.logger.Error("SetClosed: date=%s slot=%s failed: %v", date, slot, err)
		return err
	}

	r.logger.Info("SetClosed: date=%s slot=%s closed=%t", date, slot, closed)
	return nil
}

// Toggle переключает состояние слота и возвращает новое значение
func (r *Registry) Toggle(ctx context.Context, date domain.DateKey, slot domain.SlotID) (bool, error) {
	if err := r.checkPoint(date, slot); err != nil {
		r.logger.Warn("Toggle: date=%s slot=%s rejected: %v", date, slot, err)
		return false, err
	}

	var closed bool
	err := r.store.Mutate(ctx, func(state *snapshot.State) error {
		closed = !state.IsClosed(date, slot)
		state.SetClosed(date, slot, closed)
		return nil
	})
	if err != nil {
		r.logger.Error("Toggle: date=%s slot=%s failed: %v", date, slot, err)
		return false, err
	}

	r.logger.Info("Toggle: date=%s slot=%s closed=%t", date, slot, closed)
	return closed, nil
}

// SetDay закрывает или открывает все слоты даты одной мутацией
func (r *Registry) SetDay(ctx context.Context, date domain.DateKey, closed bool) error {
	if err := r.gate.Require(); err != nil {
		r.logger.Warn("SetDay: date=%s rejected: %v", date, err)
		return err
	}
	if _, err := domain.ParseDateKey(string(date)); err != nil {
		return err
	}
	if err := r.horizon.CheckMutable(date); err != nil {
		r.logger.Warn("SetDay: date=%s rejected: %v", date, err)
		return err
	}

	err := r.store.Mutate(ctx, func(state *snapshot.State) error {
		for _, s := range domain.Slots {
			state.SetClosed(date, s.ID, closed)
		}
		return nil
	})
	if err != nil {
		r.logger.Error("SetDay: date=%s failed: %v", date, err)
		return err
	}

	r.logger.Info("SetDay: date=%s closed=%t", date, closed)
	return nil
}

// checkPoint проверки для операций над одним ключом
func (r *Registry) checkPoint(date domain.DateKey, slot domain.SlotID) error {
	if err := r.gate.Require(); err != nil {
		return err
	}
	if _, err := domain.ParseDateKey(string(date)); err != nil {
		return err
	}
	if _, ok := slot.Index(); !ok {
		return fmt.Errorf("%w: unknown slot %q", domain.ErrValidation, slot)
	}
	return r.horizon.CheckMutable(date)
}
