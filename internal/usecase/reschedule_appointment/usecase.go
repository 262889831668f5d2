package reschedule_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/qb-auto/QB-AppointmentService/internal/domain"
	apptRepo "github.com/qb-auto/QB-AppointmentService/internal/infra/storage/appointment"
)

// UseCase use case переноса записи клиентом
// Перенос перезапускает процесс: статус возвращается в Pending, шаг
// прогресса в 0, набор услуг полностью заменяется
type UseCase struct {
	apptRepo     AppointmentRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:     apptRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case переноса записи
// Обновление записи и замена услуг выполняются в одной транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleAppointment: appointment=%d, customer=%d, date=%s, time=%s",
		req.AppointmentID, req.CustomerID, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Новая дата должна быть строго позже сегодняшней
	now := uc.timeProvider.Now()
	if err := validateDateInFuture(req.Date, now); err != nil {
		uc.logger.Warn("RescheduleAppointment: appointment=%d requested date %s is not in the future",
			req.AppointmentID, req.Date.Format(domain.DateFormat))
		return nil, err
	}

	services := cleanServices(req.Services)

	var result *domain.Appointment

	// 3. Проверка прав, перенос и замена услуг - единая атомарная операция
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		appt, err := uc.apptRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("RescheduleAppointment: appointment id=%d not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("RescheduleAppointment: failed to get appointment id=%d: %v",
				req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		// Перенести можно только свою запись
		if appt.CustomerID != req.CustomerID {
			uc.logger.Warn("RescheduleAppointment: appointment id=%d belongs to customer=%d, not customer=%d",
				req.AppointmentID, appt.CustomerID, req.CustomerID)
			return ErrAccessDenied
		}

		// Завершенную работу перенести нельзя
		if !appt.CanBeRescheduled() {
			uc.logger.Warn("RescheduleAppointment: appointment id=%d is %s and cannot be rescheduled",
				req.AppointmentID, appt.Status)
			return ErrTerminalState
		}

		updated := &domain.Appointment{
			PreferredDate: req.Date,
			PreferredTime: req.Time,
			Notes:         req.Notes,
		}

		if err := uc.apptRepo.Reschedule(txCtx, req.AppointmentID, updated); err != nil {
			if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
				// Статус успел стать Completed между чтением и обновлением
				return ErrTerminalState
			}
			uc.logger.Error("RescheduleAppointment: failed to reschedule appointment id=%d: %v",
				req.AppointmentID, err)
			return fmt.Errorf("%w: failed to reschedule: %v", ErrInternal, err)
		}

		if err := uc.apptRepo.ReplaceServices(txCtx, req.AppointmentID, services); err != nil {
			uc.logger.Error("RescheduleAppointment: failed to replace services for appointment id=%d: %v",
				req.AppointmentID, err)
			return fmt.Errorf("%w: failed to replace services: %v", ErrInternal, err)
		}

		appt.PreferredDate = req.Date
		appt.PreferredTime = req.Time
		appt.Notes = req.Notes
		appt.Status = domain.StatusPending
		appt.ProgressStep = 0
		result = appt
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleAppointment: successfully rescheduled appointment id=%d to %s %s",
		result.ID, req.Date.Format(domain.DateFormat), req.Time)

	return &Response{
		ID:            result.ID,
		CustomerID:    result.CustomerID,
		VehicleID:     result.VehicleID,
		PreferredDate: result.PreferredDate,
		PreferredTime: result.PreferredTime,
		Status:        string(result.Status),
		ProgressStep:  result.ProgressStep,
		Services:      services,
	}, nil
}

// validateRequest проверяет полноту входных данных запроса
func validateRequest(req *Request) error {
	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointmentID must be positive", ErrMissingField)
	}

	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrMissingField)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrMissingField)
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrMissingField)
	}

	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrMissingField, err)
	}

	if len(cleanServices(req.Services)) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrMissingField)
	}

	return nil
}

// validateDateInFuture проверяет, что дата строго позже сегодняшней
func validateDateInFuture(date, now time.Time) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	todayOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if !dateOnly.After(todayOnly) {
		return ErrDateNotInFuture
	}

	return nil
}

// cleanServices убирает пустые названия и дубликаты, сохраняя порядок
func cleanServices(services []string) []string {
	seen := make(map[string]struct{}, len(services))
	cleaned := make([]string, 0, len(services))

	for _, s := range services {
		name := strings.TrimSpace(s)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		cleaned = append(cleaned, name)
	}

	return cleaned
}
