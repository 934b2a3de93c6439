package admin_login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StageCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-StageCalendar/internal/domain"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidPassword    = "неверный пароль"
)

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

// Handle POST /api/v1/admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.gate.Login(req.Password); err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			h.logger.Warn("POST /admin/login - Invalid password from %s", r.RemoteAddr)
			handlers.RespondForbidden(w, msgInvalidPassword)
			return
		}
		h.logger.Error("POST /admin/login - Login failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/login - Admin gate opened from %s", r.RemoteAddr)
	handlers.RespondJSON(w, http.StatusOK, &GateResponse{Admin: true})
}
