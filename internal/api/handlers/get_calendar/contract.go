package get_calendar

import (
	"time"

	"github.com/m04kA/SMC-StageCalendar/internal/domain"
	"github.com/m04kA/SMC-StageCalendar/internal/service/availability"
)

type AvailabilityResolver interface {
	Month(year int, month time.Month) ([]availability.DaySummary, error)
}

// Horizon границы окна бронирования для отрисовки календаря
type Horizon interface {
	Today() domain.DateKey
	End() domain.DateKey
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
