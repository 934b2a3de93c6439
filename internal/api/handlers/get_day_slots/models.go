package get_day_slots

import "github.com/m04kA/SMC-StageCalendar/internal/service/availability"

// DayResponse HTTP response model
type DayResponse struct {
	Date     string         `json:"date"`
	Status   string         `json:"status"`
	Bookable bool           `json:"bookable"`
	Slots    []SlotResponse `json:"slots"`
}

// SlotResponse состояние одного слота
type SlotResponse struct {
	SlotID     string `json:"slotId"`
	Time       string `json:"time"`
	Label      string `json:"label"`
	Closed     bool   `json:"closed"`
	Booked     bool   `json:"booked"`
	Available  bool   `json:"available"`
	ArtistName string `json:"artistName,omitempty"`
}

// FromDayView конвертирует представление дня в HTTP response
func FromDayView(view availability.DayView) *DayResponse {
	resp := &DayResponse{
		Date:     view.Date.String(),
		Status:   string(view.Status),
		Bookable: view.Status.IsBookable(),
		Slots:    make([]SlotResponse, 0, len(view.Slots)),
	}
	for _, s := range view.Slots {
		sr := SlotResponse{
			SlotID:    string(s.Slot.ID),
			Time:      s.Slot.Time,
			Label:     s.Slot.Label,
			Closed:    s.Closed,
			Booked:    s.Reservation != nil,
			Available: s.Available,
		}
		if s.Reservation != nil {
			sr.ArtistName = s.Reservation.ArtistName
		}
		resp.Slots = append(resp.Slots, sr)
	}
	return resp
}
