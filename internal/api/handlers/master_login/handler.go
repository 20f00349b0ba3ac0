package master_login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/masters"
	"github.com/m04kA/SMC-SalonService/internal/service/masters/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCredentials = "неверный логин или пароль"
	msgAccountInactive    = "учетная запись отключена"
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

// Handle POST /api/v1/masters/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /masters/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, masters.ErrInvalidCredentials):
			h.logger.Warn("POST /masters/login - Invalid credentials: username=%s", req.Username)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		case errors.Is(err, masters.ErrAccountInactive):
			h.logger.Warn("POST /masters/login - Inactive account: username=%s", req.Username)
			handlers.RespondForbidden(w, msgAccountInactive)

		default:
			h.logger.Error("POST /masters/login - Failed: username=%s, error=%v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /masters/login - Success: username=%s, master=%s", result.Username, result.MasterCode)
	handlers.RespondJSON(w, http.StatusOK, result)
}
