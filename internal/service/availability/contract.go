package availability

import (
	"github.com/m04kA/SMC-StageCalendar/internal/domain"
	"github.com/m04kA/SMC-StageCalendar/internal/infra/storage/snapshot"
)

// Store интерфейс чтения закоммиченного снапшота
type Store interface {
	View() *snapshot.State
}

// Horizon интерфейс горизонта бронирования
type Horizon interface {
	Today() domain.DateKey
	End() domain.DateKey
	IsPast(date domain.DateKey) bool
	IsTooFuture(date domain.DateKey) bool
}
