package update_vehicle

import (
	"context"

	"github.com/qb-auto/QB-AppointmentService/internal/service/vehicles/models"
)

type VehicleService interface {
	Update(ctx context.Context, id int64, req *models.UpdateVehicleRequest) (*models.VehicleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
