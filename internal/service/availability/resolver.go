package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-StageCalendar/internal/domain"
	"github.com/m04kA/SMC-StageCalendar/internal/infra/storage/snapshot"
)

// Resolver вычисляет доступность дат и слотов.
// Результат не кэшируется: каждый вызов читает свежий снапшот.
type Resolver struct {
	store   Store
	horizon Horizon
}

// NewResolver создает новый экземпляр резолвера
func NewResolver(store Store, horizon Horizon) *Resolver {
	return &Resolver{store: store, horizon: horizon}
}

// OpenSlots возвращает незакрытые слоты даты в каноническом порядке
func (r *Resolver) OpenSlots(date domain.DateKey) []domain.SlotID {
	return openSlots(r.store.View(), date)
}

// DayStatus возвращает статус даты.
// Проверки идут по приоритету: TooFuture, Past, AllClosed, Full, PartiallyOpen.
func (r *Resolver) DayStatus(date domain.DateKey) domain.DayStatus {
	return r.dayStatus(r.store.View(), date)
}

// DaySlots возвращает подробное состояние всех слотов даты
func (r *Resolver) DaySlots(date domain.DateKey) DayView {
	state := r.store.View()
	status := r.dayStatus(state, date)
	bookings := state.ReservationsOn(date)

	view := DayView{
		Date:   date,
		Status: status,
		Slots:  make([]SlotView, 0, len(domain.Slots)),
	}
	for _, s := range domain.Slots {
		sv := SlotView{Slot: s, Closed: state.IsClosed(date, s.ID)}
		if res, ok := bookings[s.ID]; ok {
			sv.Reservation = &res
		}
		sv.Available = status.IsBookable() && !sv.Closed && sv.Reservation == nil
		view.Slots = append(view.Slots, sv)
	}
	return view
}

// Month возвращает сводку по всем дням месяца
func (r *Resolver) Month(year int, month time.Month) ([]DaySummary, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: invalid month %d", domain.ErrValidation, month)
	}
	if year < 1 || year > 9999 {
		return nil, fmt.Errorf("%w: invalid year %d", domain.ErrValidation, year)
	}

	state := r.store.View()
	first := domain.NewDateKey(year, month, 1)
	days := first.Time().AddDate(0, 1, -1).Day()

	summaries := make([]DaySummary, 0, days)
	for i := 0; i < days; i++ {
		date := first.AddDays(i)
		open := openSlots(state, date)
		bookings := state.ReservationsOn(date)

		booked := 0
		for _, s := range open {
			if _, ok := bookings[s]; ok {
				booked++
			}
		}

		summaries = append(summaries, DaySummary{
			Date:      date,
			Status:    r.dayStatus(state, date),
			OpenCount: len(open),
			Booked:    booked,
		})
	}
	return summaries, nil
}

func (r *Resolver) dayStatus(state *snapshot.State, date domain.DateKey) domain.DayStatus {
	if r.horizon.IsTooFuture(date) {
		return domain.DayTooFuture
	}
	if r.horizon.IsPast(date) {
		return domain.DayPast
	}

	open := openSlots(state, date)
	if len(open) == 0 {
		return domain.DayAllClosed
	}

	bookings := state.ReservationsOn(date)
	for _, s := range open {
		if _, ok := bookings[s]; !ok {
			return domain.DayPartiallyOpen
		}
	}
	return domain.DayFull
}

func openSlots(state *snapshot.State, date domain.DateKey) []domain.SlotID {
	open := make([]domain.SlotID, 0, len(domain.Slots))
	for _, s := range domain.Slots {
		if !state.IsClosed(date, s.ID) {
			open = append(open, s.ID)
		}
	}
	return open
}
