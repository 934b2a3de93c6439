package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StageCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-StageCalendar/internal/domain"
)

const (
	msgNotFound  = "бронирование не найдено"
	msgForbidden = "требуется вход администратора"
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

// Handle DELETE /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["reservationId"]

	if err := h.ledger.Cancel(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			h.logger.Warn("DELETE /reservations/{id} - Admin gate closed: id=%s", id)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, domain.ErrNotFound):
			h.logger.Warn("DELETE /reservations/{id} - Reservation not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /reservations/{id} - Failed to cancel reservation: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /reservations/{id} - Reservation cancelled: id=%s", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
