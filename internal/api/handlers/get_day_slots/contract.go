package get_day_slots

import (
	"github.com/m04kA/SMC-StageCalendar/internal/domain"
	"github.com/m04kA/SMC-StageCalendar/internal/service/availability"
)

type AvailabilityResolver interface {
	DaySlots(date domain.DateKey) availability.DayView
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
