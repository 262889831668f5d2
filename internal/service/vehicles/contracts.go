package vehicles

import (
	"context"

	"github.com/qb-auto/QB-AppointmentService/internal/domain"
)

// VehicleRepository интерфейс репозитория гаража клиента
type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error)
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	GetByCustomerID(ctx context.Context, customerID int64) ([]*domain.Vehicle, error)
	CountByCustomer(ctx context.Context, customerID int64) (int, error)
	Update(ctx context.Context, v *domain.Vehicle) error
	Delete(ctx context.Context, id, customerID int64) error
}

// AppointmentFinder ищет активную запись на обслуживание для автомобиля
// Нужен, чтобы не удалять автомобиль с незавершённой записью
type AppointmentFinder interface {
	FindActive(ctx context.Context, customerID, vehicleID int64) (*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
