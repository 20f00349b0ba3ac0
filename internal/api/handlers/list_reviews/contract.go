package list_reviews

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/reviews/models"
)

type ReviewsService interface {
	ListPublished(ctx context.Context, limit uint64) (*models.ReviewListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
