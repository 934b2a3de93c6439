package closedslots

import (
	"context"

	"github.com/m04kA/SMC-StageCalendar/internal/domain"
	"github.com/m04kA/SMC-StageCalendar/internal/infra/storage/snapshot"
)

// Store интерфейс общего хранилища состояния
type Store interface {
	View() *snapshot.State
	Mutate(ctx context.Context, fn func(state *snapshot.State) error) error
}

// Authorizer интерфейс гейта администратора
type Authorizer interface {
	Require() error
}

// Horizon интерфейс горизонта бронирования
type Horizon interface {
	CheckMutable(date domain.DateKey) error
}

// Metrics интерфейс метрик пакетных операций
type Metrics interface {
	AddBulkKeys(action string, n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
