package get_admin_overview

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/auth"
	"github.com/m04kA/SMC-SalonService/internal/service/masters/models"
)

type MastersService interface {
	AdminOverview(ctx context.Context, claims *auth.Claims) (*models.AdminOverviewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
