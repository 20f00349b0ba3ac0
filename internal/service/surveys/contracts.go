package surveys

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// SurveyRepository интерфейс репозитория анкет
type SurveyRepository interface {
	CreateConsultation(ctx context.Context, consultation *domain.StyleConsultation) (*domain.StyleConsultation, error)
	CreateFeedback(ctx context.Context, feedback *domain.ServiceFeedback) (*domain.ServiceFeedback, error)
	FeedbackStats(ctx context.Context) (*domain.FeedbackStats, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
