package book_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/qb-auto/QB-AppointmentService/internal/domain"
	apptRepo "github.com/qb-auto/QB-AppointmentService/internal/infra/storage/appointment"
	customerRepo "github.com/qb-auto/QB-AppointmentService/internal/infra/storage/customer"
	vehicleRepo "github.com/qb-auto/QB-AppointmentService/internal/infra/storage/vehicle"
)

// UseCase use case для создания записи на обслуживание
// Реализует полный конвейер проверок бронирования: полнота данных,
// дата не раньше завтра, совпадение телефона, принадлежность номерного
// знака и отсутствие активной записи для автомобиля
type UseCase struct {
	apptRepo     AppointmentRepository
	vehicleRepo  VehicleRepository
	customerRepo CustomerRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	vehicleRepo VehicleRepository,
	customerRepo CustomerRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:     apptRepo,
		vehicleRepo:  vehicleRepo,
		customerRepo: customerRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания записи
// Использует сериализуемую транзакцию: при любой ошибке после начала
// записи в БД частичные изменения (автомобиль, запись, услуги) откатываются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookAppointment: customer=%d, plate=%s, date=%s, time=%s, services=%d",
		req.CustomerID, req.Plate, req.Date.Format(domain.DateFormat), req.Time, len(req.Services))

	// 1. Валидация полноты входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата должна быть строго позже сегодняшней
	now := uc.timeProvider.Now()
	if err := validateDateInFuture(req.Date, now); err != nil {
		uc.logger.Warn("BookAppointment: customer=%d requested date %s is not in the future",
			req.CustomerID, req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 3. Телефон из формы должен совпадать с номером аккаунта
	// Сравнение идет по цифрам, форматирование игнорируется
	accountPhone, err := uc.customerRepo.GetPhone(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			uc.logger.Warn("BookAppointment: customer id=%d not found", req.CustomerID)
			return nil, ErrCustomerNotFound
		}
		uc.logger.Error("BookAppointment: failed to get phone for customer id=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get customer phone: %v", ErrInternal, err)
	}

	if domain.NormalizePhone(req.Phone) != domain.NormalizePhone(accountPhone) {
		uc.logger.Warn("BookAppointment: phone mismatch for customer id=%d", req.CustomerID)
		return nil, ErrPhoneMismatch
	}

	plate := domain.NormalizePlate(req.Plate)
	services := cleanServices(req.Services)

	var result *domain.Appointment
	var vehicleCreated bool

	// 4. Разрешение номерного знака, проверка активной записи и вставки -
	// единая атомарная операция
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Ищем автомобиль по номеру
		vehicle, err := uc.vehicleRepo.FindByPlate(txCtx, plate)
		switch {
		case err == nil:
			// Автомобиль найден - он должен принадлежать этому клиенту
			if !vehicle.OwnedBy(req.CustomerID) {
				uc.logger.Warn("BookAppointment: plate %s belongs to customer id=%d, not id=%d",
					plate, vehicle.CustomerID, req.CustomerID)
				return ErrPlateOwnedByOther
			}

		case errors.Is(err, vehicleRepo.ErrVehicleNotFound):
			// Номер свободен - регистрируем автомобиль на клиента
			vehicle, err = uc.vehicleRepo.Create(txCtx, &domain.Vehicle{
				CustomerID:   req.CustomerID,
				LicensePlate: plate,
				Model:        req.Model,
			})
			if err != nil {
				// Параллельная регистрация того же номера: уникальный индекс
				// сработал первым, значит номер уже чужой
				if errors.Is(err, vehicleRepo.ErrDuplicatePlate) {
					uc.logger.Warn("BookAppointment: concurrent registration of plate %s", plate)
					return ErrPlateOwnedByOther
				}
				uc.logger.Error("BookAppointment: failed to register vehicle %s: %v", plate, err)
				return fmt.Errorf("%w: failed to register vehicle: %v", ErrInternal, err)
			}
			vehicleCreated = true
			uc.logger.Info("BookAppointment: registered new vehicle id=%d plate=%s for customer=%d",
				vehicle.ID, plate, req.CustomerID)

		default:
			uc.logger.Error("BookAppointment: failed to look up plate %s: %v", plate, err)
			return fmt.Errorf("%w: failed to look up vehicle: %v", ErrInternal, err)
		}

		// 4.2. У автомобиля не должно быть активной записи, дата и время не важны
		existing, err := uc.apptRepo.FindActive(txCtx, req.CustomerID, vehicle.ID)
		if err != nil && !errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			uc.logger.Error("BookAppointment: failed to check active appointment for vehicle id=%d: %v",
				vehicle.ID, err)
			return fmt.Errorf("%w: failed to check active appointment: %v", ErrInternal, err)
		}
		if existing != nil {
			uc.logger.Warn("BookAppointment: vehicle id=%d already has active appointment id=%d (status=%s)",
				vehicle.ID, existing.ID, existing.Status)
			return ErrActiveAppointmentExists
		}

		// 4.3. Создаем запись со статусом Pending и нулевым прогрессом
		created, err := uc.apptRepo.Create(txCtx, &domain.Appointment{
			CustomerID:    req.CustomerID,
			VehicleID:     vehicle.ID,
			PreferredDate: req.Date,
			PreferredTime: req.Time,
			Status:        domain.StatusPending,
			ProgressStep:  0,
			Notes:         req.Notes,
		})
		if err != nil {
			uc.logger.Error("BookAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		// 4.4. Сохраняем набор услуг
		if err := uc.apptRepo.ReplaceServices(txCtx, created.ID, services); err != nil {
			uc.logger.Error("BookAppointment: failed to save services for appointment id=%d: %v",
				created.ID, err)
			return fmt.Errorf("%w: failed to save services: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookAppointment: successfully created appointment id=%d for customer=%d",
		result.ID, req.CustomerID)

	return &Response{
		ID:             result.ID,
		CustomerID:     result.CustomerID,
		VehicleID:      result.VehicleID,
		PreferredDate:  result.PreferredDate,
		PreferredTime:  result.PreferredTime,
		Status:         string(result.Status),
		ProgressStep:   result.ProgressStep,
		Notes:          result.Notes,
		Services:       services,
		VehicleCreated: vehicleCreated,
		CreatedAt:      result.CreatedAt,
		UpdatedAt:      result.UpdatedAt,
	}, nil
}
