package get_admin_overview

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/service/masters"
)

const (
	msgUnauthorized = "требуется авторизация"
	msgAccessDenied = "доступ только для администратора"
)

type Handler struct {
	service MastersService
	logger  Logger
}

func NewHandler(service MastersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/overview
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /admin/overview - No claims in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.AdminOverview(r.Context(), claims)
	if err != nil {
		if errors.Is(err, masters.ErrAccessDenied) {
			h.logger.Warn("GET /admin/overview - Access denied: user=%s", claims.Username)
			handlers.RespondForbidden(w, msgAccessDenied)
			return
		}
		h.logger.Error("GET /admin/overview - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/overview - Success: user=%s", claims.Username)
	handlers.RespondJSON(w, http.StatusOK, result)
}
