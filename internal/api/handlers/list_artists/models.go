package list_artists

import "github.com/m04kA/SMC-StageCalendar/internal/api/handlers"

// ListArtistsResponse HTTP response model
type ListArtistsResponse struct {
	Artists []*handlers.ArtistResponse `json:"artists"`
	Pending int                        `json:"pending"`
	Total   int                        `json:"total"`
}
