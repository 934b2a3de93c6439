package reset_demo

import seedDemo "github.com/m04kA/SMC-StageCalendar/internal/usecase/seed_demo"

// ResetResponse HTTP response model
type ResetResponse struct {
	Artists      int `json:"artists"`
	Reservations int `json:"reservations"`
	ClosedSlots  int `json:"closedSlots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *seedDemo.Response) *ResetResponse {
	return &ResetResponse{
		Artists:      resp.Artists,
		Reservations: resp.Reservations,
		ClosedSlots:  resp.ClosedSlots,
	}
}
