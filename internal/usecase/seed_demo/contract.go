package seed_demo

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StageCalendar/internal/domain"
	"github.com/m04kA/SMC-StageCalendar/internal/infra/storage/snapshot"
)

// Store интерфейс хранилища состояния
type Store interface {
	View() *snapshot.State
	Replace(ctx context.Context, state *snapshot.State) error
}

// Authorizer интерфейс гейта администратора
type Authorizer interface {
	Require() error
}

// Horizon интерфейс горизонта бронирования
type Horizon interface {
	Today() domain.DateKey
	End() domain.DateKey
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
