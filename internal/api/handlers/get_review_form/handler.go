package get_review_form

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	getReviewForm "github.com/m04kA/SMC-SalonService/internal/usecase/get_review_form"
)

const (
	msgTokenNotFound = "ссылка на отзыв не найдена"
	msgTokenExpired  = "срок действия ссылки истек"
	msgTokenUsed     = "ссылка уже была использована"
)

type Handler struct {
	useCase GetReviewFormUseCase
	logger  Logger
}

func NewHandler(useCase GetReviewFormUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/reviews/tokens/{token}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	token := vars["token"]

	result, err := h.useCase.Execute(r.Context(), &getReviewForm.Request{Token: token})
	if err != nil {
		switch {
		case errors.Is(err, getReviewForm.ErrTokenNotFound), errors.Is(err, getReviewForm.ErrInvalidInput):
			h.logger.Warn("GET /reviews/tokens/{token} - Token not found")
			handlers.RespondNotFound(w, msgTokenNotFound)

		case errors.Is(err, getReviewForm.ErrTokenExpired):
			h.logger.Warn("GET /reviews/tokens/{token} - Token expired")
			handlers.RespondError(w, http.StatusGone, msgTokenExpired)

		case errors.Is(err, getReviewForm.ErrTokenUsed):
			h.logger.Warn("GET /reviews/tokens/{token} - Token already used")
			handlers.RespondError(w, http.StatusGone, msgTokenUsed)

		default:
			h.logger.Error("GET /reviews/tokens/{token} - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reviews/tokens/{token} - Token valid: master=%s", result.MasterCode)
	handlers.RespondJSON(w, http.StatusOK, result)
}
