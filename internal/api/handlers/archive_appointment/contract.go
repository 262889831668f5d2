package archive_appointment

import (
	"context"

	"github.com/qb-auto/QB-AppointmentService/internal/service/appointments/models"
)

type AppointmentService interface {
	Archive(ctx context.Context, id int64) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
