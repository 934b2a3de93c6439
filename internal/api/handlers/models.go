package handlers

import (
	"time"

	"github.com/m04kA/SMC-StageCalendar/internal/domain"
)

// ReservationResponse HTTP модель бронирования
type ReservationResponse struct {
	ID         string `json:"id"`
	Date       string `json:"date"`
	SlotID     string `json:"slotId"`
	SlotTime   string `json:"slotTime"`
	ArtistID   string `json:"artistId"`
	Name       string `json:"name"`
	ArtistName string `json:"artistName"`
	Phone      string `json:"phone"`
	LineID     string `json:"lineId"`
	Note       string `json:"note,omitempty"`
	CreatedAt  string `json:"createdAt"`
}

// FromReservation конвертирует бронирование в HTTP модель
func FromReservation(r *domain.Reservation) *ReservationResponse {
	resp := &ReservationResponse{
		ID:         r.ID,
		Date:       r.DateKey.String(),
		SlotID:     string(r.SlotID),
		ArtistID:   r.ArtistID,
		Name:       r.Name,
		ArtistName: r.ArtistName,
		Phone:      r.Phone,
		LineID:     r.LineID,
		Note:       r.Note,
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
	}
	if slot, ok := r.SlotID.Slot(); ok {
		resp.SlotTime = slot.Time
	}
	return resp
}

// FromReservations конвертирует список бронирований
func FromReservations(list []domain.Reservation) []*ReservationResponse {
	resp := make([]*ReservationResponse, 0, len(list))
	for i := range list {
		resp = append(resp, FromReservation(&list[i]))
	}
	return resp
}

// ArtistResponse HTTP модель артиста
type ArtistResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	StageName   string `json:"artist"`
	Genre       string `json:"genre,omitempty"`
	Instagram   string `json:"instagram,omitempty"`
	TikTok      string `json:"tiktok,omitempty"`
	YouTube     string `json:"youtube,omitempty"`
	Twitter     string `json:"twitter,omitempty"`
	VideoURL    string `json:"videoUrl,omitempty"`
	VideoLineID string `json:"videoLineId,omitempty"`
	LineID      string `json:"lineId"`
	Note        string `json:"note,omitempty"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}

// FromArtist конвертирует артиста в HTTP модель
func FromArtist(a *domain.Artist) *ArtistResponse {
	return &ArtistResponse{
		ID:          a.ID,
		Name:        a.Name,
		Phone:       a.Phone,
		StageName:   a.StageName,
		Genre:       a.Genre,
		Instagram:   a.Instagram,
		TikTok:      a.TikTok,
		YouTube:     a.YouTube,
		Twitter:     a.Twitter,
		VideoURL:    a.VideoURL,
		VideoLineID: a.VideoLineID,
		LineID:      a.LineID,
		Note:        a.Note,
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
	}
}
