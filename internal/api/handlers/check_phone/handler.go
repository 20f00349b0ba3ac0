package check_phone

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	checkPhone "github.com/m04kA/SMC-SalonService/internal/usecase/check_phone"
)

const (
	msgInvalidParams = "параметры master и phone обязательны"
)

type Handler struct {
	useCase CheckPhoneUseCase
	logger  Logger
}

func NewHandler(useCase CheckPhoneUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/reviews/check-phone?master=alexander&phone=...&name=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	result, err := h.useCase.Execute(r.Context(), &checkPhone.Request{
		MasterCode: query.Get("master"),
		Phone:      query.Get("phone"),
		Name:       query.Get("name"),
	})
	if err != nil {
		if errors.Is(err, checkPhone.ErrInvalidInput) {
			h.logger.Warn("GET /reviews/check-phone - Invalid params: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		h.logger.Error("GET /reviews/check-phone - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reviews/check-phone - Success: master=%s, verified=%t",
		query.Get("master"), result.Confirmed)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
