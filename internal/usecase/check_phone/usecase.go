package check_phone

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// UseCase use case для предварительной проверки телефона перед отзывом
// Форма отзыва без одноразовой ссылки показывает клиенту, пройдет ли
// его отзыв проверку, до заполнения остальных полей
type UseCase struct {
	verifier Verifier
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(verifier Verifier, logger Logger) *UseCase {
	return &UseCase{
		verifier: verifier,
		logger:   logger,
	}
}

// Execute выполняет use case проверки телефона
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.MasterCode == "" {
		return nil, fmt.Errorf("%w: masterCode is required", ErrInvalidInput)
	}
	if !domain.IsKnownMaster(req.MasterCode) {
		return nil, fmt.Errorf("%w: unknown master code", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Phone) == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	confirmed, err := uc.verifier.HadBooking(ctx, req.MasterCode, req.Phone, req.Name)
	if err != nil {
		uc.logger.Error("CheckPhone: verification failed: %v", err)
		return nil, fmt.Errorf("%w: verification failed: %v", ErrInternal, err)
	}

	uc.logger.Info("CheckPhone: master=%s, confirmed=%t", req.MasterCode, confirmed)
	return &Response{Confirmed: confirmed}, nil
}
