package set_closed_day

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StageCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-StageCalendar/internal/domain"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgForbidden          = "требуется вход администратора"
	msgBeyondHorizon      = "дата за пределами окна бронирования"
)

type Handler struct {
	registry ClosedSlotRegistry
	logger   Logger
}

func NewHandler(registry ClosedSlotRegistry, logger Logger) *Handler {
	return &Handler{
		registry: registry,
		logger:   logger,
	}
}

// Handle PUT /api/v1/closed-slots/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := domain.ParseDateKey(mux.Vars(r)["date"])
	if err != nil {
		h.logger.Warn("PUT /closed-slots/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var req SetClosedDayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /closed-slots/{date} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.registry.SetDay(r.Context(), date, req.Closed); err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			h.logger.Warn("PUT /closed-slots/{date} - Admin gate closed")
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, domain.ErrRangeInvalid):
			h.logger.Warn("PUT /closed-slots/{date} - Beyond horizon: date=%s", date)
			handlers.RespondBadRequest(w, msgBeyondHorizon)

		default:
			h.logger.Error("PUT /closed-slots/{date} - Failed to update day: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	closedSlots := h.registry.ClosedOn(date)
	resp := &ClosedDayResponse{
		Date:        date.String(),
		ClosedSlots: make([]string, 0, len(closedSlots)),
	}
	for _, s := range closedSlots {
		resp.ClosedSlots = append(resp.ClosedSlots, string(s))
	}

	h.logger.Info("PUT /closed-slots/{date} - date=%s closed=%t", date, req.Closed)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
