package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	getSlots "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate = "параметр date обязателен"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/masters/{masterCode}/available-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	masterCode := vars["masterCode"]

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /masters/{masterCode}/available-slots - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /masters/{masterCode}/available-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getSlots.Request{
		MasterCode: masterCode,
		Date:       date,
	})
	if err != nil {
		if errors.Is(err, getSlots.ErrInvalidInput) {
			h.logger.Warn("GET /masters/{masterCode}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		h.logger.Error("GET /masters/{masterCode}/available-slots - Failed: master=%s, error=%v",
			masterCode, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /masters/{masterCode}/available-slots - Success: master=%s, date=%s, available=%d",
		masterCode, dateStr, len(result.AvailableSlots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
