package create_reservation

import "github.com/m04kA/SMC-StageCalendar/internal/domain"

// Stage шаг сценария бронирования
type Stage string

const (
	StageSelectingArtist Stage = "selecting_artist"
	StageArtistFound     Stage = "artist_found"
	StageEnteringDetails Stage = "entering_details"
	StageConfirmed       Stage = "confirmed"
)

// SessionState снимок состояния сессии бронирования
type SessionState struct {
	Stage       Stage
	Date        domain.DateKey
	Slot        domain.SlotID
	Artist      *domain.Artist      // найденный артист, nil до поиска
	Eligible    bool                // найденный артист одобрен
	Reservation *domain.Reservation // созданное бронирование, только в StageConfirmed
}

// Request модель запроса на бронирование в один вызов
type Request struct {
	Date        domain.DateKey
	Slot        domain.SlotID
	ArtistID    string // если задан, используется вместо поиска
	ArtistQuery string // имя, сценическое имя или телефон
	Note        string
}

// Response модель ответа с созданным бронированием
type Response struct {
	Reservation *domain.Reservation
	Artist      *domain.Artist
}
