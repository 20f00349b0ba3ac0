package reviewtokens

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// TokenRepository интерфейс репозитория одноразовых токенов
type TokenRepository interface {
	Create(ctx context.Context, token *domain.ReviewToken) error
	GetByToken(ctx context.Context, tokenValue string) (*domain.ReviewToken, error)
	MarkUsed(ctx context.Context, tokenValue string, usedAt time.Time) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальное время
type RealTimeProvider struct{}

// Now возвращает текущее время
func (RealTimeProvider) Now() time.Time {
	return time.Now()
}
