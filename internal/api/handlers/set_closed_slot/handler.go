package set_closed_slot

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
	msgInvalidSlot        = "некорректный слот, ожидается A-D"
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

// Handle PUT /api/v1/closed-slots/{date}/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	date, err := domain.ParseDateKey(vars["date"])
	if err != nil {
		h.logger.Warn("PUT /closed-slots/{date}/{slot} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	slot, err := domain.ParseSlotID(vars["slotId"])
	if err != nil {
		h.logger.Warn("PUT /closed-slots/{date}/{slot} - Invalid slot: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlot)
		return
	}

	var req SetClosedSlotRequest
	if r.ContentLength != 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("PUT /closed-slots/{date}/{slot} - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	var closed bool
	if req.Closed == nil {
		closed, err = h.registry.Toggle(r.Context(), date, slot)
	} else {
		closed = *req.Closed
		err = h.registry.SetClosed(r.Context(), date, slot, closed)
	}
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			h.logger.Warn("PUT /closed-slots/{date}/{slot} - Admin gate closed")
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, domain.ErrRangeInvalid):
			h.logger.Warn("PUT /closed-slots/{date}/{slot} - Beyond horizon: date=%s", date)
			handlers.RespondBadRequest(w, msgBeyondHorizon)

		default:
			h.logger.Error("PUT /closed-slots/{date}/{slot} - Failed to update: date=%s slot=%s, error=%v",
				date, slot, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	closedSlots := h.registry.ClosedOn(date)
	resp := &ClosedSlotResponse{
		Date:        date.String(),
		SlotID:      string(slot),
		Closed:      closed,
		ClosedSlots: make([]string, 0, len(closedSlots)),
	}
	for _, s := range closedSlots {
		resp.ClosedSlots = append(resp.ClosedSlots, string(s))
	}

	h.logger.Info("PUT /closed-slots/{date}/{slot} - date=%s slot=%s closed=%t", date, slot, closed)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
