package horizon

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-StageCalendar/internal/domain"
)

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Horizon скользящее окно бронирования: от сегодня до сегодня + N месяцев включительно
type Horizon struct {
	months       int
	timeProvider TimeProvider
}

// New создает горизонт на months месяцев вперёд
func New(months int, timeProvider TimeProvider) *Horizon {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	return &Horizon{months: months, timeProvider: timeProvider}
}

// Months возвращает длину горизонта в месяцах
func (h *Horizon) Months() int {
	return h.months
}

// Today возвращает сегодняшнюю дату (без времени)
func (h *Horizon) Today() domain.DateKey {
	return domain.DateKeyOf(h.timeProvider.Now())
}

// End возвращает последнюю допустимую дату горизонта
func (h *Horizon) End() domain.DateKey {
	now := h.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return domain.DateKeyOf(today.AddDate(0, h.months, 0))
}

// IsTooFuture проверяет, что дата строго позже конца горизонта
func (h *Horizon) IsTooFuture(date domain.DateKey) bool {
	return date.After(h.End())
}

// IsPast проверяет, что дата строго раньше сегодняшнего дня
func (h *Horizon) IsPast(date domain.DateKey) bool {
	return date.Before(h.Today())
}

// CheckBookable проверяет, что на дату можно создать бронирование
func (h *Horizon) CheckBookable(date domain.DateKey) error {
	if h.IsPast(date) {
		return fmt.Errorf("%w: %s is in the past", domain.ErrHorizonExceeded, date)
	}
	if h.IsTooFuture(date) {
		return fmt.Errorf("%w: %s is after %s", domain.ErrHorizonExceeded, date, h.End())
	}
	return nil
}

// CheckMutable проверяет, что дату можно менять в реестре закрытых слотов
func (h *Horizon) CheckMutable(date domain.DateKey) error {
	if h.IsTooFuture(date) {
		return fmt.Errorf("%w: %s is after %s", domain.ErrRangeInvalid, date, h.End())
	}
	return nil
}
