package vehicles

import (
	"context"
	"errors"
	"fmt"

	"github.com/qb-auto/QB-AppointmentService/internal/domain"
	appointmentRepo "github.com/qb-auto/QB-AppointmentService/internal/infra/storage/appointment"
	vehicleRepo "github.com/qb-auto/QB-AppointmentService/internal/infra/storage/vehicle"
	"github.com/qb-auto/QB-AppointmentService/internal/service/vehicles/models"
)

// Service сервис для работы с гаражом клиента
type Service struct {
	vehicleRepo       VehicleRepository
	appointmentFinder AppointmentFinder
	logger            Logger
}

// NewService создает новый экземпляр сервиса гаража
func NewService(
	vehicleRepo VehicleRepository,
	appointmentFinder AppointmentFinder,
	logger Logger,
) *Service {
	return &Service{
		vehicleRepo:       vehicleRepo,
		appointmentFinder: appointmentFinder,
		logger:            logger,
	}
}

// List получает все автомобили клиента
func (s *Service) List(ctx context.Context, customerID int64) (*models.VehicleListResponse, error) {
	s.logger.Info("List: fetching vehicles for customer=%d", customerID)

	vehicles, err := s.vehicleRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		s.logger.Error("List: repository error for customer=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d vehicles for customer=%d", len(vehicles), customerID)
	return models.FromDomainVehicleList(vehicles), nil
}

// Add добавляет автомобиль в гараж клиента
// Номерной знак нормализуется и должен быть глобально уникальным,
// на клиента действует лимит автомобилей
func (s *Service) Add(ctx context.Context, req *models.AddVehicleRequest) (*models.VehicleResponse, error) {
	s.logger.Info("Add: adding vehicle plate=%s for customer=%d", req.LicensePlate, req.CustomerID)

	plate := domain.NormalizePlate(req.LicensePlate)
	if plate == "" || req.Model == "" {
		s.logger.Warn("Add: missing plate or model for customer=%d", req.CustomerID)
		return nil, fmt.Errorf("%w: license plate and model are required", ErrInvalidInput)
	}
	if len(plate) > domain.MaxPlateLength || len(req.Model) > domain.MaxModelLength {
		s.logger.Warn("Add: plate or model too long for customer=%d", req.CustomerID)
		return nil, fmt.Errorf("%w: license plate or model too long", ErrInvalidInput)
	}

	count, err := s.vehicleRepo.CountByCustomer(ctx, req.CustomerID)
	if err != nil {
		s.logger.Error("Add: failed to count vehicles for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
	}
	if count >= domain.MaxVehiclesPerCustomer {
		s.logger.Warn("Add: vehicle limit reached for customer=%d (count=%d)", req.CustomerID, count)
		return nil, fmt.Errorf("%w: at most %d vehicles per customer", ErrVehicleLimitReached, domain.MaxVehiclesPerCustomer)
	}

	created, err := s.vehicleRepo.Create(ctx, &domain.Vehicle{
		CustomerID:   req.CustomerID,
		LicensePlate: plate,
		Model:        req.Model,
	})
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrDuplicatePlate) {
			s.logger.Warn("Add: plate=%s already registered", plate)
			return nil, ErrDuplicatePlate
		}
		s.logger.Error("Add: failed to create vehicle for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Add: vehicle id=%d plate=%s added for customer=%d", created.ID, plate, req.CustomerID)
	return models.FromDomainVehicle(created), nil
}

// Update изменяет данные автомобиля
// Клиент может редактировать только свой автомобиль
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateVehicleRequest) (*models.VehicleResponse, error) {
	s.logger.Info("Update: updating vehicle id=%d for customer=%d", id, req.CustomerID)

	plate := domain.NormalizePlate(req.LicensePlate)
	if plate == "" || req.Model == "" {
		s.logger.Warn("Update: missing plate or model for vehicle id=%d", id)
		return nil, fmt.Errorf("%w: license plate and model are required", ErrInvalidInput)
	}
	if len(plate) > domain.MaxPlateLength || len(req.Model) > domain.MaxModelLength {
		s.logger.Warn("Update: plate or model too long for vehicle id=%d", id)
		return nil, fmt.Errorf("%w: license plate or model too long", ErrInvalidInput)
	}

	vehicle, err := s.getOwnedVehicle(ctx, "Update", id, req.CustomerID)
	if err != nil {
		return nil, err
	}

	vehicle.LicensePlate = plate
	vehicle.Model = req.Model

	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		switch {
		case errors.Is(err, vehicleRepo.ErrDuplicatePlate):
			s.logger.Warn("Update: plate=%s already registered", plate)
			return nil, ErrDuplicatePlate
		case errors.Is(err, vehicleRepo.ErrVehicleNotFound):
			s.logger.Warn("Update: vehicle id=%d not found for customer=%d", id, req.CustomerID)
			return nil, ErrVehicleNotFound
		default:
			s.logger.Error("Update: failed to update vehicle id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Update: vehicle id=%d updated", id)
	return models.FromDomainVehicle(vehicle), nil
}

// Delete удаляет автомобиль из гаража
// Автомобиль с незавершённой записью на обслуживание удалить нельзя
func (s *Service) Delete(ctx context.Context, id, customerID int64) error {
	s.logger.Info("Delete: deleting vehicle id=%d for customer=%d", id, customerID)

	if _, err := s.getOwnedVehicle(ctx, "Delete", id, customerID); err != nil {
		return err
	}

	// Проверяем, что на автомобиль нет активной записи
	_, err := s.appointmentFinder.FindActive(ctx, customerID, id)
	if err == nil {
		s.logger.Warn("Delete: vehicle id=%d has an active appointment", id)
		return ErrVehicleHasActiveAppointment
	}
	if !errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
		s.logger.Error("Delete: failed to check active appointments for vehicle id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.vehicleRepo.Delete(ctx, id, customerID); err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("Delete: vehicle id=%d not found for customer=%d", id, customerID)
			return ErrVehicleNotFound
		}
		s.logger.Error("Delete: failed to delete vehicle id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: vehicle id=%d deleted", id)
	return nil
}

// getOwnedVehicle загружает автомобиль и проверяет владельца
func (s *Service) getOwnedVehicle(ctx context.Context, op string, id, customerID int64) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("%s: vehicle id=%d not found", op, id)
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("%s: repository error for vehicle id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if !vehicle.OwnedBy(customerID) {
		s.logger.Warn("%s: vehicle id=%d is not owned by customer=%d", op, id, customerID)
		return nil, ErrAccessDenied
	}

	return vehicle, nil
}
