package set_closed_slot

import (
	"context"

	"github.com/m04kA/SMC-StageCalendar/internal/domain"
)

type ClosedSlotRegistry interface {
	SetClosed(ctx context.Context, date domain.DateKey, slot domain.SlotID, closed bool) error
	Toggle(ctx context.Context, date domain.DateKey, slot domain.SlotID) (bool, error)
	ClosedOn(date domain.DateKey) []domain.SlotID
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
