package list_reservations

import "github.com/m04kA/SMC-StageCalendar/internal/domain"

type ReservationLedger interface {
	List() []domain.Reservation
	ListByDate(date domain.DateKey) []domain.Reservation
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
