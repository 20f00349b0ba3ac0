package submit_review

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// ReviewRepository интерфейс репозитория отзывов
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
}

// TokenService интерфейс сервиса одноразовых токенов
type TokenService interface {
	Validate(ctx context.Context, tokenValue string) (*domain.ReviewToken, error)
	Consume(ctx context.Context, tokenValue string) error
}

// Verifier интерфейс проверки клиента по истории записей
type Verifier interface {
	HadBooking(ctx context.Context, masterCode, phoneNumber, clientName string) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
