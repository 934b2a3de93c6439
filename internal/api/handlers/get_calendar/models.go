package get_calendar

import "github.com/m04kA/SMC-StageCalendar/internal/service/availability"

// CalendarResponse HTTP response model
type CalendarResponse struct {
	Year       int           `json:"year"`
	Month      int           `json:"month"`
	Today      string        `json:"today"`
	HorizonEnd string        `json:"horizonEnd"`
	Days       []DayResponse `json:"days"`
}

// DayResponse сводка по дню
type DayResponse struct {
	Date      string `json:"date"`
	Status    string `json:"status"`
	OpenSlots int    `json:"openSlots"`
	Booked    int    `json:"booked"`
}

// FromSummaries конвертирует сводки по дням в HTTP response
func FromSummaries(days []availability.DaySummary) []DayResponse {
	resp := make([]DayResponse, 0, len(days))
	for _, d := range days {
		resp = append(resp, DayResponse{
			Date:      d.Date.String(),
			Status:    string(d.Status),
			OpenSlots: d.OpenCount,
			Booked:    d.Booked,
		})
	}
	return resp
}
