package approve_artist

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StageCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-StageCalendar/internal/domain"
)

const (
	msgNotFound  = "артист не найден"
	msgForbidden = "требуется вход администратора"
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

// Handle POST /api/v1/artists/{artistId}/approve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["artistId"]

	artist, err := h.directory.Approve(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			h.logger.Warn("POST /artists/{id}/approve - Admin gate closed: id=%s", id)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, domain.ErrNotFound):
			h.logger.Warn("POST /artists/{id}/approve - Artist not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("POST /artists/{id}/approve - Failed to approve: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /artists/{id}/approve - Artist approved: id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromArtist(artist))
}
