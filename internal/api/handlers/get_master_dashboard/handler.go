package get_master_dashboard

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/service/masters"
)

const (
	msgUnauthorized   = "требуется авторизация"
	msgAccessDenied   = "доступ только к своему кабинету"
	msgMasterNotFound = "мастер не найден"
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

// Handle GET /api/v1/masters/{masterCode}/dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /masters/{masterCode}/dashboard - No claims in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	masterCode := mux.Vars(r)["masterCode"]

	result, err := h.service.Dashboard(r.Context(), claims, masterCode)
	if err != nil {
		switch {
		case errors.Is(err, masters.ErrAccessDenied):
			h.logger.Warn("GET /masters/{masterCode}/dashboard - Access denied: user=%s, master=%s",
				claims.Username, masterCode)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, masters.ErrMasterNotFound):
			h.logger.Warn("GET /masters/{masterCode}/dashboard - Master not found: %s", masterCode)
			handlers.RespondNotFound(w, msgMasterNotFound)

		default:
			h.logger.Error("GET /masters/{masterCode}/dashboard - Failed: master=%s, error=%v", masterCode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /masters/{masterCode}/dashboard - Success: master=%s", masterCode)
	handlers.RespondJSON(w, http.StatusOK, result)
}
