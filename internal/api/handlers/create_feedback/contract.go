package create_feedback

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/surveys/models"
)

type SurveysService interface {
	CreateFeedback(ctx context.Context, req *models.CreateFeedbackRequest) (*models.FeedbackResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
