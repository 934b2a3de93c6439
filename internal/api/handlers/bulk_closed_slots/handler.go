package bulk_closed_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StageCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-StageCalendar/internal/domain"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRange       = "некорректный диапазон: начало позже конца или дата за пределами окна бронирования"
	msgInvalidFilter      = "некорректные даты, дни недели или слоты"
	msgForbidden          = "требуется вход администратора"
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

// Handle POST /api/v1/closed-slots/bulk
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BulkRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /closed-slots/bulk - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	rangeReq, err := req.ToRangeRequest()
	if err != nil {
		h.logger.Warn("POST /closed-slots/bulk - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	job, err := h.registry.PlanRange(rangeReq)
	if err != nil {
		h.respondError(w, err)
		return
	}

	done := 0
	for p := range job.Run(r.Context()) {
		if p.Err != nil {
			h.logger.Warn("POST /closed-slots/bulk - Stopped after %d of %d keys: %v", p.Done, p.Total, p.Err)
			h.respondError(w, p.Err)
			return
		}
		done = p.Done
	}

	dates := job.Dates()
	resp := &BulkResponse{
		Closed: job.Closed(),
		Dates:  make([]string, 0, len(dates)),
		Total:  job.Total(),
		Done:   done,
	}
	for _, d := range dates {
		resp.Dates = append(resp.Dates, d.String())
	}

	h.logger.Info("POST /closed-slots/bulk - %s..%s closed=%t keys=%d", req.Start, req.End, req.Closed, done)
	handlers.RespondJSON(w, http.StatusOK, resp)
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		h.logger.Warn("POST /closed-slots/bulk - Admin gate closed")
		handlers.RespondForbidden(w, msgForbidden)

	case errors.Is(err, domain.ErrRangeInvalid):
		h.logger.Warn("POST /closed-slots/bulk - Invalid range: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRange)

	case errors.Is(err, domain.ErrValidation):
		h.logger.Warn("POST /closed-slots/bulk - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)

	default:
		h.logger.Error("POST /closed-slots/bulk - Bulk update failed: %v", err)
		handlers.RespondInternalError(w)
	}
}
