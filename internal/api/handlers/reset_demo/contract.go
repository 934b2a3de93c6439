package reset_demo

import (
	"context"

	seedDemo "github.com/m04kA/SMC-StageCalendar/internal/usecase/seed_demo"
)

type SeedDemoUseCase interface {
	Execute(ctx context.Context, req *seedDemo.Request) (*seedDemo.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
