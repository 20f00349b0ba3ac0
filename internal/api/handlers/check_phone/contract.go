package check_phone

import (
	"context"

	checkPhone "github.com/m04kA/SMC-SalonService/internal/usecase/check_phone"
)

type CheckPhoneUseCase interface {
	Execute(ctx context.Context, req *checkPhone.Request) (*checkPhone.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
