package reject_artist

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

// Handle DELETE /api/v1/artists/{artistId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["artistId"]

	if err := h.directory.Reject(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			h.logger.Warn("DELETE /artists/{id} - Admin gate closed: id=%s", id)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, domain.ErrNotFound):
			h.logger.Warn("DELETE /artists/{id} - Artist not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /artists/{id} - Failed to reject: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /artists/{id} - Artist rejected and removed: id=%s", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
