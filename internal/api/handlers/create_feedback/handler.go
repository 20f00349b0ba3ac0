package create_feedback

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/surveys"
	"github.com/m04kA/SMC-SalonService/internal/service/surveys/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "все оценки должны быть от 1 до 5"
)

type Handler struct {
	service SurveysService
	logger  Logger
}

func NewHandler(service SurveysService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/feedback
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateFeedbackRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /feedback - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateFeedback(r.Context(), &req)
	if err != nil {
		if errors.Is(err, surveys.ErrInvalidInput) {
			h.logger.Warn("POST /feedback - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("POST /feedback - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /feedback - Created: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
