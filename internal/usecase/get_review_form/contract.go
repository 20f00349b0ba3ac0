package get_review_form

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// TokenService интерфейс сервиса одноразовых токенов
type TokenService interface {
	Validate(ctx context.Context, tokenValue string) (*domain.ReviewToken, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
