package approve_appointment

import (
	"context"

	"github.com/qb-auto/QB-AppointmentService/internal/service/appointments/models"
)

type AppointmentService interface {
	Approve(ctx context.Context, id int64) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
