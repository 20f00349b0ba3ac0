package get_available_slots

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	GetWithFilter(ctx context.Context, filter domain.MasterBookingsFilter) ([]*domain.Booking, error)
}

// ScheduleProvider интерфейс получения графика работы мастера
type ScheduleProvider interface {
	ScheduleFor(masterCode string) domain.MasterSchedule
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
