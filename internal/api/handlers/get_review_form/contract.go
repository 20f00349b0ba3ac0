package get_review_form

import (
	"context"

	getReviewForm "github.com/m04kA/SMC-SalonService/internal/usecase/get_review_form"
)

type GetReviewFormUseCase interface {
	Execute(ctx context.Context, req *getReviewForm.Request) (*getReviewForm.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
