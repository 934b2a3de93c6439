package list_artists

import (
	"net/http"

	"github.com/m04kA/SMC-StageCalendar/internal/api/handlers"
)

const (
	msgForbidden = "требуется вход администратора"
)

type Handler struct {
	directory ArtistDirectory
	gate      Authorizer
	logger    Logger
}

func NewHandler(directory ArtistDirectory, gate Authorizer, logger Logger) *Handler {
	return &Handler{
		directory: directory,
		gate:      gate,
		logger:    logger,
	}
}

// Handle GET /api/v1/artists
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := h.gate.Require(); err != nil {
		h.logger.Warn("GET /artists - Admin gate closed")
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	list := h.directory.List()
	resp := &ListArtistsResponse{
		Artists: make([]*handlers.ArtistResponse, 0, len(list)),
		Pending: h.directory.PendingCount(),
		Total:   len(list),
	}
	for i := range list {
		resp.Artists = append(resp.Artists, handlers.FromArtist(&list[i]))
	}

	h.logger.Info("GET /artists - Found %d artists, %d pending", resp.Total, resp.Pending)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
