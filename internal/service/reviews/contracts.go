package reviews

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// ReviewRepository интерфейс репозитория отзывов
type ReviewRepository interface {
	ListPublished(ctx context.Context, limit uint64) ([]*domain.Review, error)
	Ratings(ctx context.Context) ([]*domain.MasterRating, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
