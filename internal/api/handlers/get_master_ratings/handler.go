package get_master_ratings

import (
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
)

type Handler struct {
	service ReviewsService
	logger  Logger
}

func NewHandler(service ReviewsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/masters/ratings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.MasterRatings(r.Context())
	if err != nil {
		h.logger.Error("GET /masters/ratings - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /masters/ratings - Success: masters=%d", len(result.Ratings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
