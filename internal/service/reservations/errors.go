package reservations

import (
	"fmt"

	"github.com/m04kA/SMC-StageCalendar/internal/domain"
)

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = fmt.Errorf("%w: reservations: reservation not found", domain.ErrNotFound)
)
