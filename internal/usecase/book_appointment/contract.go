package book_appointment

import (
	"context"
	"time"

	"github.com/qb-auto/QB-AppointmentService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей на обслуживание
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	FindActive(ctx context.Context, customerID, vehicleID int64) (*domain.Appointment, error)
	ReplaceServices(ctx context.Context, appointmentID int64, services []string) error
}

// VehicleRepository интерфейс репозитория автомобилей
type VehicleRepository interface {
	FindByPlate(ctx context.Context, plate string) (*domain.Vehicle, error)
	Create(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error)
}

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	GetPhone(ctx context.Context, customerID int64) (string, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
