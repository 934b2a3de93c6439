package reservations

import (
	"context"
	"time"

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
	CheckBookable(date domain.DateKey) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Metrics интерфейс счетчика бронирований
type Metrics interface {
	IncReservation(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
