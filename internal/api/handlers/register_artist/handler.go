package register_artist

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StageCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-StageCalendar/internal/domain"
	"github.com/m04kA/SMC-StageCalendar/internal/service/artists"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgRequiredField      = "имя, телефон, имя артиста и LINE ID обязательны"
	msgNoSocialHandle     = "укажите хотя бы один аккаунт в соцсетях"
	msgNoVideo            = "укажите ссылку на видео или контакт для отправки видео"
	msgInvalidInput       = "некорректные данные анкеты"
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

// Handle POST /api/v1/artists
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterArtistRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /artists - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	artist, err := h.directory.Register(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, artists.ErrRequiredField):
			h.logger.Warn("POST /artists - Required field missing: %v", err)
			handlers.RespondBadRequest(w, msgRequiredField)

		case errors.Is(err, artists.ErrNoSocialHandle):
			h.logger.Warn("POST /artists - No social handle")
			handlers.RespondBadRequest(w, msgNoSocialHandle)

		case errors.Is(err, artists.ErrNoVideo):
			h.logger.Warn("POST /artists - No video reference")
			handlers.RespondBadRequest(w, msgNoVideo)

		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("POST /artists - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /artists - Failed to register artist: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /artists - Artist registered: id=%s", artist.ID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromArtist(artist))
}
