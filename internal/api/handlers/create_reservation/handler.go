package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StageCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-StageCalendar/internal/domain"
	createReservation "github.com/m04kA/SMC-StageCalendar/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSelection   = "некорректная дата или слот"
	msgArtistNotFound     = "артист не найден"
	msgArtistPending      = "анкета артиста на модерации, бронирование недоступно"
	msgSlotClosed         = "слот закрыт для бронирования"
	msgSlotTaken          = "слот уже забронирован"
	msgHorizonExceeded    = "дата вне окна бронирования"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSelection)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrArtistPending):
			h.logger.Warn("POST /reservations - Artist pending: date=%s slot=%s", req.Date, req.SlotID)
			handlers.RespondForbidden(w, msgArtistPending)

		case errors.Is(err, domain.ErrNotFound):
			h.logger.Warn("POST /reservations - Artist not found: date=%s slot=%s", req.Date, req.SlotID)
			handlers.RespondNotFound(w, msgArtistNotFound)

		case errors.Is(err, domain.ErrSlotClosed):
			h.logger.Warn("POST /reservations - Slot closed: date=%s slot=%s", req.Date, req.SlotID)
			handlers.RespondConflict(w, msgSlotClosed)

		case errors.Is(err, domain.ErrSlotTaken):
			h.logger.Warn("POST /reservations - Slot taken: date=%s slot=%s", req.Date, req.SlotID)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, domain.ErrHorizonExceeded):
			h.logger.Warn("POST /reservations - Outside horizon: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgHorizonExceeded)

		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("POST /reservations - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: date=%s slot=%s, error=%v",
				req.Date, req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%s date=%s slot=%s",
		result.Reservation.ID, req.Date, req.SlotID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromReservation(result.Reservation))
}
