package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-SalonService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgValidationFailed   = "проверьте правильность заполнения полей"
	msgSlotTaken          = "выбранное время уже занято"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var validationErrs createBooking.ValidationErrors
		switch {
		case errors.As(err, &validationErrs):
			h.logger.Warn("POST /bookings - Validation failed: master=%s, fields=%v",
				req.MasterCode, map[string]string(validationErrs))
			handlers.RespondValidationErrors(w, msgValidationFailed, validationErrs)

		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: master=%s, date=%s, time=%s",
				req.MasterCode, req.Date, req.Time)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: master=%s, error=%v",
				req.MasterCode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, master=%s",
		result.ID, result.MasterCode)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
