package get_appointment_progress

import (
	"context"

	"github.com/qb-auto/QB-AppointmentService/internal/domain"
	"github.com/qb-auto/QB-AppointmentService/internal/service/appointments/models"
)

type AppointmentService interface {
	GetProgress(ctx context.Context, id int64, principal domain.Principal) (*models.ProgressResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
