package create_reservation

import (
	"github.com/m04kA/SMC-StageCalendar/internal/domain"
	createReservation "github.com/m04kA/SMC-StageCalendar/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Date        string `json:"date"`   // "2024-04-01"
	SlotID      string `json:"slotId"` // "A".."D"
	ArtistID    string `json:"artistId,omitempty"`
	ArtistQuery string `json:"artistQuery,omitempty"`
	Note        string `json:"note,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	date, err := domain.ParseDateKey(r.Date)
	if err != nil {
		return nil, err
	}
	slot, err := domain.ParseSlotID(r.SlotID)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		Date:        date,
		Slot:        slot,
		ArtistID:    r.ArtistID,
		ArtistQuery: r.ArtistQuery,
		Note:        r.Note,
	}, nil
}
