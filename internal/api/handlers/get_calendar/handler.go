package get_calendar

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StageCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-StageCalendar/internal/domain"
)

const (
	msgInvalidYear  = "некорректный год"
	msgInvalidMonth = "некорректный месяц, ожидается 1-12"
)

type Handler struct {
	resolver AvailabilityResolver
	horizon  Horizon
	logger   Logger
}

func NewHandler(resolver AvailabilityResolver, horizon Horizon, logger Logger) *Handler {
	return &Handler{
		resolver: resolver,
		horizon:  horizon,
		logger:   logger,
	}
}

// Handle GET /api/v1/calendar/{year}/{month}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}
	month, err := strconv.Atoi(vars["month"])
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	days, err := h.resolver.Month(year, time.Month(month))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			h.logger.Warn("GET /calendar - Invalid period: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMonth)
			return
		}
		h.logger.Error("GET /calendar - Failed to build calendar: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /calendar - year=%d month=%d days=%d", year, month, len(days))
	handlers.RespondJSON(w, http.StatusOK, &CalendarResponse{
		Year:       year,
		Month:      month,
		Today:      h.horizon.Today().String(),
		HorizonEnd: h.horizon.End().String(),
		Days:       FromSummaries(days),
	})
}
