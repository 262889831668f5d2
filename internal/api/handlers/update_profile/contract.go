package update_profile

import (
	"context"

	"github.com/qb-auto/QB-AppointmentService/internal/service/customers/models"
)

type CustomerService interface {
	UpdateProfile(ctx context.Context, req *models.UpdateProfileRequest) (*models.CustomerResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
