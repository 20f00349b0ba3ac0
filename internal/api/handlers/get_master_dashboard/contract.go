package get_master_dashboard

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/auth"
	"github.com/m04kA/SMC-SalonService/internal/service/masters/models"
)

type MastersService interface {
	Dashboard(ctx context.Context, claims *auth.Claims, masterCode string) (*models.DashboardResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
