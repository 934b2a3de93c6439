package lookup_artist

import (
	"github.com/m04kA/SMC-StageCalendar/internal/domain"
)

// LookupResponse HTTP response model.
// Eligible отделяет найденного, но не одобренного артиста от одобренного.
type LookupResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Name        string `json:"name"`
	Genre       string `json:"genre,omitempty"`
	Status      string `json:"status"`
	Eligible    bool   `json:"eligible"`
}

// FromArtist конвертирует артиста в публичный результат поиска
func FromArtist(a *domain.Artist) *LookupResponse {
	return &LookupResponse{
		ID:          a.ID,
		DisplayName: a.DisplayName(),
		Name:        a.Name,
		Genre:       a.Genre,
		Status:      string(a.Status),
		Eligible:    a.IsApproved(),
	}
}
