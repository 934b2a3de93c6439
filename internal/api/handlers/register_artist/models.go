package register_artist

import "github.com/m04kA/SMC-StageCalendar/internal/service/artists"

// RegisterArtistRequest HTTP request model
type RegisterArtistRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	StageName   string `json:"artist"`
	LineID      string `json:"lineId"`
	Genre       string `json:"genre,omitempty"`
	Instagram   string `json:"instagram,omitempty"`
	TikTok      string `json:"tiktok,omitempty"`
	YouTube     string `json:"youtube,omitempty"`
	Twitter     string `json:"twitter,omitempty"`
	VideoURL    string `json:"videoUrl,omitempty"`
	VideoLineID string `json:"videoLineId,omitempty"`
	Note        string `json:"note,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *RegisterArtistRequest) ToServiceRequest() artists.RegisterRequest {
	return artists.RegisterRequest{
		Name:        r.Name,
		Phone:       r.Phone,
		StageName:   r.StageName,
		LineID:      r.LineID,
		Genre:       r.Genre,
		Instagram:   r.Instagram,
		TikTok:      r.TikTok,
		YouTube:     r.YouTube,
		Twitter:     r.Twitter,
		VideoURL:    r.VideoURL,
		VideoLineID: r.VideoLineID,
		Note:        r.Note,
	}
}
