package admin_logout

import (
	"net/http"

	"github.com/m04kA/SMC-StageCalendar/internal/api/handlers"
)

// GateResponse состояние гейта администратора
type GateResponse struct {
	Admin bool `json:"admin"`
}

type Handler struct {
	gate   AdminGate
	logger Logger
}

func NewHandler(gate AdminGate, logger Logger) *Handler {
	return &Handler{
		gate:   gate,
		logger: logger,
	}
}

// Handle POST /api/v1/admin/logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.gate.Logout()

	h.logger.Info("POST /admin/logout - Admin gate closed from %s", r.RemoteAddr)
	handlers.RespondJSON(w, http.StatusOK, &GateResponse{Admin: h.gate.IsOpen()})
}
