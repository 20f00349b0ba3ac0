package submit_review

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	submitReview "github.com/m04kA/SMC-SalonService/internal/usecase/submit_review"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgValidationFailed    = "проверьте правильность заполнения полей"
	msgTokenNotFound       = "ссылка на отзыв не найдена"
	msgTokenExpired        = "срок действия ссылки истек"
	msgTokenUsed           = "ссылка уже была использована"
	msgBookingNotConfirmed = "не удалось подтвердить запись: проверьте телефон и имя"
)

type Handler struct {
	useCase SubmitReviewUseCase
	logger  Logger
}

func NewHandler(useCase SubmitReviewUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubmitReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reviews - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var validationErrs submitReview.ValidationErrors
		switch {
		case errors.As(err, &validationErrs):
			h.logger.Warn("POST /reviews - Validation failed: fields=%v", map[string]string(validationErrs))
			handlers.RespondValidationErrors(w, msgValidationFailed, validationErrs)

		case errors.Is(err, submitReview.ErrTokenNotFound):
			h.logger.Warn("POST /reviews - Token not found")
			handlers.RespondNotFound(w, msgTokenNotFound)

		case errors.Is(err, submitReview.ErrTokenExpired):
			h.logger.Warn("POST /reviews - Token expired")
			handlers.RespondError(w, http.StatusGone, msgTokenExpired)

		case errors.Is(err, submitReview.ErrTokenUsed):
			h.logger.Warn("POST /reviews - Token already used")
			handlers.RespondError(w, http.StatusGone, msgTokenUsed)

		case errors.Is(err, submitReview.ErrBookingNotConfirmed):
			h.logger.Warn("POST /reviews - Booking not confirmed: master=%s", req.MasterCode)
			handlers.RespondForbidden(w, msgBookingNotConfirmed)

		default:
			h.logger.Error("POST /reviews - Failed to submit review: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reviews - Review accepted: review_id=%d, master=%s, published=%t",
		result.ID, result.MasterCode, result.IsPublished)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
