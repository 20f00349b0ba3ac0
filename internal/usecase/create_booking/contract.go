package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	ExistsAt(ctx context.Context, masterCode string, date time.Time, slot types.TimeString) (bool, error)
}

// TokenService интерфейс сервиса одноразовых токенов для отзывов
type TokenService interface {
	Generate(ctx context.Context, phone, clientName, masterCode string, bookingID int64) (*domain.ReviewToken, error)
}

// ScheduleProvider интерфейс получения графика работы мастера
type ScheduleProvider interface {
	ScheduleFor(masterCode string) domain.MasterSchedule
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
