package get_day_slots

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StageCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-StageCalendar/internal/domain"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	resolver AvailabilityResolver
	logger   Logger
}

func NewHandler(resolver AvailabilityResolver, logger Logger) *Handler {
	return &Handler{
		resolver: resolver,
		logger:   logger,
	}
}

// Handle GET /api/v1/days/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := domain.ParseDateKey(mux.Vars(r)["date"])
	if err != nil {
		h.logger.Warn("GET /days/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	view := h.resolver.DaySlots(date)

	h.logger.Info("GET /days/{date} - date=%s status=%s", date, view.Status)
	handlers.RespondJSON(w, http.StatusOK, FromDayView(view))
}
