package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/qb-auto/QB-AppointmentService/internal/domain"
	appointmentRepo "github.com/qb-auto/QB-AppointmentService/internal/infra/storage/appointment"
	"github.com/qb-auto/QB-AppointmentService/internal/service/appointments/models"
	"github.com/qb-auto/QB-AppointmentService/pkg/ptr"
)

// Service сервис для работы с записями на обслуживание
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID получает запись по ID
// Проверяет права доступа - клиент может видеть только свою запись,
// администратор видит любую
func (s *Service) GetByID(ctx context.Context, id int64, principal domain.Principal) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for principal=%d role=%s", id, principal.ID, principal.Role)

	appt, err := s.getAppointment(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	// Проверяем права доступа
	if !principal.CanAccessCustomer(appt.CustomerID) {
		s.logger.Warn("GetByID: access denied for principal=%d to appointment id=%d", principal.ID, id)
		return nil, ErrAccessDenied
	}

	services, err := s.appointmentRepo.GetServices(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to load services for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	appt.Services = services

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(appt), nil
}

// GetProgress получает состояние трекера прогресса обслуживания
// Доступно владельцу записи и администратору
func (s *Service) GetProgress(ctx context.Context, id int64, principal domain.Principal) (*models.ProgressResponse, error) {
	s.logger.Info("GetProgress: fetching progress for appointment id=%d, principal=%d", id, principal.ID)

	appt, err := s.getAppointment(ctx, "GetProgress", id)
	if err != nil {
		return nil, err
	}

	if !principal.CanAccessCustomer(appt.CustomerID) {
		s.logger.Warn("GetProgress: access denied for principal=%d to appointment id=%d", principal.ID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetProgress: appointment id=%d at step=%d status=%s", id, appt.ProgressStep, appt.Status)
	return models.ProgressFromDomain(appt), nil
}

// GetCustomerAppointments получает историю записей клиента
func (s *Service) GetCustomerAppointments(ctx context.Context, customerID int64) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetCustomerAppointments: fetching appointments for customer=%d", customerID)

	appointments, err := s.appointmentRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		s.logger.Error("GetCustomerAppointments: repository error for customer=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: GetCustomerAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerAppointments: successfully fetched %d appointments for customer=%d", len(appointments), customerID)
	return models.FromDomainAppointmentList(appointments), nil
}

// List получает записи с гибкой фильтрацией для панели администратора
// Поддерживает фильтрацию по статусу, клиенту, периоду и включению архивных записей
//
// Примеры использования:
// - Все незавершённые записи: List(ctx, &ListRequest{})
// - Записи в работе: указать Status = "In Progress"
// - Записи клиента: указать CustomerID
// - Записи за период: StartDate и EndDate
// - Включая архив: IncludeArchived = true
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.AppointmentListResponse, error) {
	logMsg := "List: fetching appointments"
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.CustomerID != nil {
		logMsg += fmt.Sprintf(", customer=%d", *req.CustomerID)
	}
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.IncludeArchived {
		logMsg += ", includeArchived=true"
	}
	s.logger.Info(logMsg)

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid status filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}

	appointments, err := s.appointmentRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

// Approve подтверждает ожидающую запись (Pending -> Scheduled)
// Шаг прогресса выставляется в начальный, чтобы статус и шаг не расходились
func (s *Service) Approve(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("Approve: approving appointment id=%d", id)

	appt, err := s.getAppointment(ctx, "Approve", id)
	if err != nil {
		return nil, err
	}

	if !appt.CanBeApproved() {
		s.logger.Warn("Approve: appointment id=%d in status=%s cannot be approved", id, appt.Status)
		return nil, fmt.Errorf("%w: cannot approve appointment in status %q", ErrInvalidTransition, appt.Status)
	}

	if err := s.updateStatus(ctx, "Approve", appt, domain.StatusScheduled, ptr.Ptr(domain.MinProgressStep)); err != nil {
		return nil, err
	}

	s.logger.Info("Approve: appointment id=%d approved", id)
	return models.FromDomainAppointment(appt), nil
}

// Reject отклоняет запись (-> Cancelled)
// Допустимо для записей, ещё не дошедших до завершения
func (s *Service) Reject(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("Reject: rejecting appointment id=%d", id)

	appt, err := s.getAppointment(ctx, "Reject", id)
	if err != nil {
		return nil, err
	}

	if !appt.CanBeRejected() {
		s.logger.Warn("Reject: appointment id=%d in status=%s cannot be rejected", id, appt.Status)
		return nil, fmt.Errorf("%w: cannot reject appointment in status %q", ErrInvalidTransition, appt.Status)
	}

	if err := s.updateStatus(ctx, "Reject", appt, domain.StatusCancelled, nil); err != nil {
		return nil, err
	}

	s.logger.Info("Reject: appointment id=%d rejected", id)
	return models.FromDomainAppointment(appt), nil
}

// Complete помечает запись завершённой (-> Completed)
// Шаг прогресса выставляется в шаг завершения работ
func (s *Service) Complete(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("Complete: completing appointment id=%d", id)

	appt, err := s.getAppointment(ctx, "Complete", id)
	if err != nil {
		return nil, err
	}

	if !appt.CanBeCompleted() {
		s.logger.Warn("Complete: appointment id=%d in status=%s cannot be completed", id, appt.Status)
		return nil, fmt.Errorf("%w: cannot complete appointment in status %q", ErrInvalidTransition, appt.Status)
	}

	if err := s.updateStatus(ctx, "Complete", appt, domain.StatusCompleted, ptr.Ptr(domain.StepWorkCompleted)); err != nil {
		return nil, err
	}

	s.logger.Info("Complete: appointment id=%d completed", id)
	return models.FromDomainAppointment(appt), nil
}

// SetProgressStep переводит запись на указанный шаг трекера прогресса
// Статус записи пересчитывается из шага, шаги можно двигать в обе стороны
// Повторная установка того же шага допустима и ничего не ломает
func (s *Service) SetProgressStep(ctx context.Context, id int64, step int) (*models.AppointmentResponse, error) {
	s.logger.Info("SetProgressStep: setting appointment id=%d to step=%d", id, step)

	if !domain.ValidProgressStep(step) {
		s.logger.Warn("SetProgressStep: step=%d out of range for appointment id=%d", step, id)
		return nil, fmt.Errorf("%w: step %d", ErrStepOutOfRange, step)
	}

	appt, err := s.getAppointment(ctx, "SetProgressStep", id)
	if err != nil {
		return nil, err
	}

	status := domain.StatusForStep(step)
	if err := s.updateStatus(ctx, "SetProgressStep", appt, status, &step); err != nil {
		return nil, err
	}

	s.logger.Info("SetProgressStep: appointment id=%d moved to step=%d status=%s", id, step, status)
	return models.FromDomainAppointment(appt), nil
}

// Archive убирает запись из рабочих списков (-> Archived)
// Допустимо из любого статуса
func (s *Service) Archive(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("Archive: archiving appointment id=%d", id)

	appt, err := s.getAppointment(ctx, "Archive", id)
	if err != nil {
		return nil, err
	}

	if err := s.updateStatus(ctx, "Archive", appt, domain.StatusArchived, nil); err != nil {
		return nil, err
	}

	s.logger.Info("Archive: appointment id=%d archived", id)
	return models.FromDomainAppointment(appt), nil
}

// Cancel отменяет запись по инициативе клиента
// Завершённую запись отменить нельзя, причина отмены дописывается в заметки
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Cancel: cancelling appointment id=%d for principal=%d", id, req.Principal.ID)

	appt, err := s.getAppointment(ctx, "Cancel", id)
	if err != nil {
		return nil, err
	}

	if !req.Principal.CanAccessCustomer(appt.CustomerID) {
		s.logger.Warn("Cancel: access denied for principal=%d to appointment id=%d", req.Principal.ID, id)
		return nil, ErrAccessDenied
	}

	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d in status=%s cannot be cancelled", id, appt.Status)
		return nil, ErrTerminalState
	}

	var noteAppend string
	if req.Reason != "" {
		noteAppend = fmt.Sprintf(" [User Cancelled: %s]", req.Reason)
	}

	if err := s.appointmentRepo.Cancel(ctx, id, noteAppend); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d became non-cancellable", id)
			return nil, ErrTerminalState
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	appt.Status = domain.StatusCancelled
	if noteAppend != "" {
		notes := noteAppend
		if appt.Notes != nil {
			notes = *appt.Notes + noteAppend
		}
		appt.Notes = &notes
	}

	s.logger.Info("Cancel: appointment id=%d cancelled", id)
	return models.FromDomainAppointment(appt), nil
}

// getAppointment загружает запись, конвертируя ошибки репозитория в ошибки сервиса
func (s *Service) getAppointment(ctx context.Context, op string, id int64) (*domain.Appointment, error) {
	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%d not found", op, id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return appt, nil
}

// updateStatus записывает новый статус (и шаг, если задан) и обновляет domain модель
func (s *Service) updateStatus(ctx context.Context, op string, appt *domain.Appointment, status domain.AppointmentStatus, step *int) error {
	if err := s.appointmentRepo.UpdateStatus(ctx, appt.ID, status, step); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%d not found on update", op, appt.ID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("%s: failed to update appointment id=%d: %v", op, appt.ID, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	appt.Status = status
	if step != nil {
		appt.ProgressStep = *step
	}
	return nil
}
