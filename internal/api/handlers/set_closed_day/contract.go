package set_closed_day

import (
	"context"

	"github.com/m04kA/SMC-StageCalendar/internal/domain"
)

type ClosedSlotRegistry interface {
	SetDay(ctx context.Context, date domain.DateKey, closed bool) error
	ClosedOn(date domain.DateKey) []domain.SlotID
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
