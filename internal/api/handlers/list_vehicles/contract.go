package list_vehicles

import (
	"context"

	"github.com/qb-auto/QB-AppointmentService/internal/service/vehicles/models"
)

type VehicleService interface {
	List(ctx context.Context, customerID int64) (*models.VehicleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
