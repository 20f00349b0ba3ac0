package masters

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/auth"
	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// AccountRepository интерфейс репозитория аккаунтов мастеров
type AccountRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.MasterAccount, error)
}

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	GetWithFilter(ctx context.Context, filter domain.MasterBookingsFilter) ([]*domain.Booking, error)
	CountByMaster(ctx context.Context, masterCode string, today time.Time) (upcoming, past, total int64, err error)
}

// ReviewRepository интерфейс репозитория отзывов
type ReviewRepository interface {
	ListByMaster(ctx context.Context, masterCode string) ([]*domain.Review, error)
	Ratings(ctx context.Context) ([]*domain.MasterRating, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// TokenIssuer интерфейс выпуска JWT-токенов сессий
type TokenIssuer interface {
	Issue(username, masterCode string, isAdmin bool, now time.Time) (string, error)
	Parse(tokenStr string) (*auth.Claims, error)
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
