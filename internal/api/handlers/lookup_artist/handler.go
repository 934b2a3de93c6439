package lookup_artist

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StageCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-StageCalendar/internal/domain"
)

const (
	msgEmptyQuery = "введите имя, имя артиста или телефон"
	msgNotFound   = "артист не найден"
)

type Handler struct {
	directory ArtistDirectory
	logger    Logger
}

func NewHandler(directory ArtistDirectory, logger Logger) *Handler {
	return &Handler{
		directory: directory,
		logger:    logger,
	}
}

// Handle GET /api/v1/artists/lookup?q=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	artist, err := h.directory.Lookup(query)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			handlers.RespondBadRequest(w, msgEmptyQuery)

		case errors.Is(err, domain.ErrNotFound):
			h.logger.Info("GET /artists/lookup - No match for query=%q", query)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /artists/lookup - Lookup failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromArtist(artist))
}
