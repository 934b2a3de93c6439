package closedslots

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/m04kA/SMC-StageCalendar/internal/domain"
	"github.com/m04kA/SMC-StageCalendar/internal/infra/storage/snapshot"
)

// BulkJob провалидированная пакетная операция.
//
// Run отдаёт ленивую конечную последовательность результатов по каждому ключу.
// Ключи пишутся пачками по batchSize, каждая пачка в отдельной критической секции.
// Бронирования и отмены не ждут окончания длинной операции.
// Повторный Run применяет операцию заново (флаги идемпотентны).
type BulkJob struct {
	registry *Registry
	keys     []Key
	dates    []domain.DateKey
	closed   bool
}

// Total возвращает количество ключей операции
func (j *BulkJob) Total() int {
	return len(j.keys)
}

// Dates возвращает затронутые даты по возрастанию
func (j *BulkJob) Dates() []domain.DateKey {
	return slices.Clone(j.dates)
}

// Closed возвращает направление операции
func (j *BulkJob) Closed() bool {
	return j.closed
}

// Run применяет операцию, отдавая прогресс по каждому ключу
func (j *BulkJob) Run(ctx context.Context) iter.Seq[Progress] {
	return func(yield func(Progress) bool) {
		total := len(j.keys)
		done := 0

		for start := 0; start < total; start += j.registry.batchSize {
			if err := ctx.Err(); err != nil {
				yield(Progress{Done: done, Total: total, Err: err})
				return
			}

			batch := j.keys[start:min(start+j.registry.batchSize, total)]
			if err := j.registry.applyBatch(ctx, batch, j.closed); err != nil {
				yield(Progress{Done: done, Total: total, Err: err})
				return
			}

			for _, key := range batch {
				done++
				if !yield(Progress{Key: key, Done: done, Total: total}) {
					return
				}
			}
		}
	}
}

// Apply выполняет операцию целиком и возвращает количество записанных ключей
func (j *BulkJob) Apply(ctx context.Context) (int, error) {
	done := 0
	for p := range j.Run(ctx) {
		if p.Err != nil {
			return p.Done, p.Err
		}
		done = p.Done
	}
	return done, nil
}

// PlanRange валидирует диапазонную операцию и строит задание.
// Ошибки валидации возвращаются до любой записи.
// Если фильтр дней недели исключает все даты, задание пустое (не ошибка).
func (r *Registry) PlanRange(req RangeRequest) (*BulkJob, error) {
	if err := r.gate.Require(); err != nil {
		r.logger.Warn("PlanRange: rejected: %v", err)
		return nil, err
	}

	for _, bound := range []domain.DateKey{req.Start, req.End} {
		if _, err := domain.ParseDateKey(string(bound)); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrRangeInvalid, err)
		}
	}
	if req.Start.After(req.End) {
		r.logger.Warn("PlanRange: start=%s is after end=%s", req.Start, req.End)
		return nil, fmt.Errorf("%w: start %s is after end %s", domain.ErrRangeInvalid, req.Start, req.End)
	}
	if err := r.horizon.CheckMutable(req.Start); err != nil {
		r.logger.Warn("PlanRange: start rejected: %v", err)
		return nil, err
	}
	if err := r.horizon.CheckMutable(req.End); err != nil {
		r.logger.Warn("PlanRange: end rejected: %v", err)
		return nil, err
	}

	weekdays, err := weekdaySet(req.Weekdays)
	if err != nil {
		return nil, err
	}
	slots, err := normalizeSlots(req.Slots)
	if err != nil {
		return nil, err
	}

	dates := make([]domain.DateKey, 0)
	for d := req.Start; !d.After(req.End); d = d.AddDays(1) {
		if weekdays[d.Weekday()] {
			dates = append(dates, d)
		}
	}

	job := r.newJob(dates, slots, req.Closed)
	r.logger.Info("PlanRange: %s..%s closed=%t dates=%d keys=%d",
		req.Start, req.End, req.Closed, len(dates), job.Total())
	return job, nil
}

// BulkSetClosed закрывает или открывает набор слотов на наборе дат.
// Пустой набор слотов означает все слоты.
func (r *Registry) BulkSetClosed(ctx context.Context, dates []domain.DateKey, slots []domain.SlotID, closed bool) (int, error) {
	if err := r.gate.Require(); err != nil {
		r.logger.Warn("BulkSetClosed: rejected: %v", err)
		return 0, err
	}

	for _, d := range dates {
		if _, err := domain.ParseDateKey(string(d)); err != nil {
			return 0, err
		}
		if err := r.horizon.CheckMutable(d); err != nil {
			r.logger.Warn("BulkSetClosed: date rejected: %v", err)
			return 0, err
		}
	}

	normalized, err := normalizeSlots(slots)
	if err != nil {
		return 0, err
	}

	uniqueDates := slices.Clone(dates)
	slices.Sort(uniqueDates)
	uniqueDates = slices.Compact(uniqueDates)

	done, err := r.newJob(uniqueDates, normalized, closed).Apply(ctx)
	if err != nil {
		r.logger.Error("BulkSetClosed: stopped after %d keys: %v", done, err)
		return done, err
	}

	r.logger.Info("BulkSetClosed: dates=%d closed=%t keys=%d", len(uniqueDates), closed, done)
	return done, nil
}

func (r *Registry) newJob(dates []domain.DateKey, slots []domain.SlotID, closed bool) *BulkJob {
	keys := make([]Key, 0, len(dates)*len(slots))
	for _, d := range dates {
		for _, s := range slots {
			keys = append(keys, Key{Date: d, Slot: s})
		}
	}
	return &BulkJob{registry: r, keys: keys, dates: dates, closed: closed}
}

// applyBatch записывает пачку ключей одной мутацией
func (r *Registry) applyBatch(ctx context.Context, batch []Key, closed bool) error {
	if err := r.gate.Require(); err != nil {
		return err
	}

	err := r.store.Mutate(ctx, func(state *snapshot.State) error {
		for _, key := range batch {
			state.SetClosed(key.Date, key.Slot, closed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if r.metrics != nil {
		action := "open"
		if closed {
			action = "close"
		}
		r.metrics.AddBulkKeys(action, len(batch))
	}
	return nil
}

// weekdaySet строит множество дней недели; пустой фильтр = все дни
func weekdaySet(weekdays []time.Weekday) (map[time.Weekday]bool, error) {
	set := make(map[time.Weekday]bool, 7)
	if len(weekdays) == 0 {
		for d := time.Sunday; d <= time.Saturday; d++ {
			set[d] = true
		}
		return set, nil
	}
	for _, d := range weekdays {
		if d < time.Sunday || d > time.Saturday {
			return nil, fmt.Errorf("%w: invalid weekday %d", domain.ErrValidation, d)
		}
		set[d] = true
	}
	return set, nil
}

// normalizeSlots проверяет слоты и упорядочивает их канонически; пусто = все слоты
func normalizeSlots(slots []domain.SlotID) ([]domain.SlotID, error) {
	if len(slots) == 0 {
		return domain.SlotIDs(), nil
	}

	selected := make(map[domain.SlotID]bool, len(slots))
	for _, s := range slots {
		if _, ok := s.Index(); !ok {
			return nil, fmt.Errorf("%w: unknown slot %q", domain.ErrValidation, s)
		}
		selected[s] = true
	}

	result := make([]domain.SlotID, 0, len(selected))
	for _, s := range domain.Slots {
		if selected[s.ID] {
			result = append(result, s.ID)
		}
	}
	return result, nil
}
