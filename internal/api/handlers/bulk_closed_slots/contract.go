package bulk_closed_slots

import (
	"github.com/m04kA/SMC-StageCalendar/internal/service/closedslots"
)

type ClosedSlotRegistry interface {
	PlanRange(req closedslots.RangeRequest) (*closedslots.BulkJob, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
