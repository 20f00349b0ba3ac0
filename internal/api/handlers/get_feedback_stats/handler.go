package get_feedback_stats

import (
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
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

// Handle GET /api/v1/feedback/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.FeedbackStats(r.Context())
	if err != nil {
		h.logger.Error("GET /feedback/stats - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /feedback/stats - Success: total=%d", result.TotalFeedbacks)
	handlers.RespondJSON(w, http.StatusOK, result)
}
