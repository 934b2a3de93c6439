package list_reservations

import "github.com/m04kA/SMC-StageCalendar/internal/api/handlers"

// ListReservationsResponse HTTP response model
type ListReservationsResponse struct {
	Reservations []*handlers.ReservationResponse `json:"reservations"`
	Total        int                             `json:"total"`
}
