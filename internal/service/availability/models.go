package availability

import "github.com/m04kA/SMC-StageCalendar/internal/domain"

// SlotView состояние одного слота на дату
type SlotView struct {
	Slot        domain.Slot
	Closed      bool
	Reservation *domain.Reservation // nil, если слот свободен
	Available   bool                // можно забронировать прямо сейчас
}

// DayView подробное состояние даты для выбора слота
type DayView struct {
	Date   domain.DateKey
	Status domain.DayStatus
	Slots  []SlotView // в каноническом порядке слотов
}

// DaySummary краткая сводка по дате для календаря
type DaySummary struct {
	Date      domain.DateKey
	Status    domain.DayStatus
	OpenCount int // незакрытые слоты
	Booked    int // бронирования на незакрытых слотах
}
