package create_reservation

import (
	"context"

	"github.com/m04kA/SMC-StageCalendar/internal/domain"
	"github.com/m04kA/SMC-StageCalendar/internal/service/availability"
	"github.com/m04kA/SMC-StageCalendar/internal/service/reservations"
)

// ArtistDirectory интерфейс справочника артистов
type ArtistDirectory interface {
	Lookup(query string) (*domain.Artist, error)
	Get(id string) (*domain.Artist, error)
}

// ReservationLedger интерфейс журнала бронирований
type ReservationLedger interface {
	Reserve(ctx context.Context, req reservations.ReserveRequest) (*domain.Reservation, error)
}

// AvailabilityResolver интерфейс расчета доступности
type AvailabilityResolver interface {
	DaySlots(date domain.DateKey) availability.DayView
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
