package get_reservation

import "github.com/m04kA/SMC-StageCalendar/internal/domain"

type ReservationLedger interface {
	Get(id string) (*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
