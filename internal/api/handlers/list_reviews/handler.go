package list_reviews

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
)

const (
	msgInvalidLimit = "некорректное значение limit"

	// defaultLimit количество отзывов на главной странице
	defaultLimit uint64 = 6
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

// Handle GET /api/v1/reviews?limit=20
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	limit := defaultLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.ParseUint(limitStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /reviews - Invalid limit: %v", err)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = parsed
	}

	result, err := h.service.ListPublished(r.Context(), limit)
	if err != nil {
		h.logger.Error("GET /reviews - Failed to list reviews: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reviews - Success: count=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
