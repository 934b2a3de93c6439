package reservations

import "github.com/m04kA/SMC-StageCalendar/internal/domain"

// ReserveRequest запрос на бронирование слота
type ReserveRequest struct {
	Date   domain.DateKey
	Slot   domain.SlotID
	Artist domain.ArtistSnapshot
	Note   string
}

// Результаты бронирования для метрик
const (
	resultCreated = "created"
	resultClosed  = "slot_closed"
	resultTaken   = "slot_taken"
	resultHorizon = "horizon_exceeded"
	resultInvalid = "invalid"
	resultFailed  = "failed"
)
