package reset_demo

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StageCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-StageCalendar/internal/domain"
	seedDemo "github.com/m04kA/SMC-StageCalendar/internal/usecase/seed_demo"
)

const (
	msgForbidden = "требуется вход администратора"
)

type Handler struct {
	useCase SeedDemoUseCase
	logger  Logger
}

func NewHandler(useCase SeedDemoUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/reset-demo
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context(), &seedDemo.Request{Force: true})
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			h.logger.Warn("POST /admin/reset-demo - Admin gate closed")
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("POST /admin/reset-demo - Failed to reset demo data: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/reset-demo - Demo data restored")
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
