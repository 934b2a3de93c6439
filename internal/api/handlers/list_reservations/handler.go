package list_reservations

import (
	"net/http"

	"github.com/m04kA/SMC-StageCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-StageCalendar/internal/domain"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	ledger ReservationLedger
	logger Logger
}

func NewHandler(ledger ReservationLedger, logger Logger) *Handler {
	return &Handler{
		ledger: ledger,
		logger: logger,
	}
}

// Handle GET /api/v1/reservations?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var list []domain.Reservation

	if raw := r.URL.Query().Get("date"); raw != "" {
		date, err := domain.ParseDateKey(raw)
		if err != nil {
			h.logger.Warn("GET /reservations - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		list = h.ledger.ListByDate(date)
	} else {
		list = h.ledger.List()
	}

	h.logger.Info("GET /reservations - Found %d reservations", len(list))
	handlers.RespondJSON(w, http.StatusOK, &ListReservationsResponse{
		Reservations: handlers.FromReservations(list),
		Total:        len(list),
	})
}
