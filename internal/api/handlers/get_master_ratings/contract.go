package get_master_ratings

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/reviews/models"
)

type ReviewsService interface {
	MasterRatings(ctx context.Context) (*models.MasterRatingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
