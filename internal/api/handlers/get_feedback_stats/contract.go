package get_feedback_stats

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/surveys/models"
)

type SurveysService interface {
	FeedbackStats(ctx context.Context) (*models.FeedbackStatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
