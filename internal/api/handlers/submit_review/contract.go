package submit_review

import (
	"context"

	submitReview "github.com/m04kA/SMC-SalonService/internal/usecase/submit_review"
)

type SubmitReviewUseCase interface {
	Execute(ctx context.Context, req *submitReview.Request) (*submitReview.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
