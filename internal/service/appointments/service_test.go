package appointments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qb-auto/QB-AppointmentService/internal/domain"
	appointmentRepo "github.com/qb-auto/QB-AppointmentService/internal/infra/storage/appointment"
	"github.com/qb-auto/QB-AppointmentService/internal/service/appointments/models"
)

type fakeRepo struct {
	byID     map[int64]*domain.Appointment
	services map[int64][]string

	lastStatus domain.AppointmentStatus
	lastStep   *int
	cancelled  map[int64]string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		byID:      make(map[int64]*domain.Appointment),
		services:  make(map[int64][]string),
		cancelled: make(map[int64]string),
	}
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	if appt, ok := f.byID[id]; ok {
		copied := *appt
		return &copied, nil
	}
	return nil, appointmentRepo.ErrAppointmentNotFound
}

func (f *fakeRepo) GetByCustomerID(_ context.Context, customerID int64) ([]*domain.Appointment, error) {
	var result []*domain.Appointment
	for _, appt := range f.byID {
		if appt.CustomerID == customerID {
			result = append(result, appt)
		}
	}
	return result, nil
}

func (f *fakeRepo) ListWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	var result []*domain.Appointment
	for _, appt := range f.byID {
		if appt.Status == domain.StatusArchived && !filter.IncludeArchived && filter.Status == nil {
			continue
		}
		if filter.Status != nil && appt.Status != *filter.Status {
			continue
		}
		result = append(result, appt)
	}
	return result, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus, progressStep *int) error {
	appt, ok := f.byID[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	appt.Status = status
	if progressStep != nil {
		appt.ProgressStep = *progressStep
	}
	f.lastStatus = status
	f.lastStep = progressStep
	return nil
}

func (f *fakeRepo) Cancel(_ context.Context, id int64, noteAppend string) error {
	appt, ok := f.byID[id]
	if !ok || appt.Status == domain.StatusCompleted {
		return appointmentRepo.ErrAppointmentNotFound
	}
	appt.Status = domain.StatusCancelled
	f.cancelled[id] = noteAppend
	return nil
}

func (f *fakeRepo) GetServices(_ context.Context, appointmentID int64) ([]string, error) {
	return f.services[appointmentID], nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(repo *fakeRepo) *Service {
	return NewService(repo, nopLogger{})
}

var (
	owner = domain.Principal{ID: 7, Role: domain.RoleCustomer}
	admin = domain.Principal{ID: 1, Role: domain.RoleAdmin}
	other = domain.Principal{ID: 8, Role: domain.RoleCustomer}
)

func TestGetByID_AccessControl(t *testing.T) {
	repo := newFakeRepo()
	repo.byID[5] = &domain.Appointment{ID: 5, CustomerID: 7, Status: domain.StatusScheduled}
	repo.services[5] = []string{"Oil Change"}
	svc := newTestService(repo)

	// Владелец видит запись вместе с услугами
	resp, err := svc.GetByID(context.Background(), 5, owner)
	require.NoError(t, err)
	assert.Equal(t, []string{"Oil Change"}, resp.Services)

	// Администратор видит любую запись
	_, err = svc.GetByID(context.Background(), 5, admin)
	require.NoError(t, err)

	// Чужой клиент - отказ
	_, err = svc.GetByID(context.Background(), 5, other)
	require.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), 404, owner)
	require.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestGetProgress(t *testing.T) {
	repo := newFakeRepo()
	model := "Toyota Axio"
	repo.byID[5] = &domain.Appointment{
		ID: 5, CustomerID: 7,
		Status: domain.StatusInProgress, ProgressStep: 4,
		VehicleModel: &model,
	}
	svc := newTestService(repo)

	resp, err := svc.GetProgress(context.Background(), 5, owner)
	require.NoError(t, err)
	assert.Equal(t, 4, resp.ProgressStep)
	assert.Equal(t, "Servicing (In Progress)", resp.StageLabel)
	assert.Equal(t, string(domain.StatusInProgress), resp.Status)
	require.NotNil(t, resp.VehicleModel)
	assert.Equal(t, "Toyota Axio", *resp.VehicleModel)
}

func TestApprove(t *testing.T) {
	repo := newFakeRepo()
	repo.byID[5] = &domain.Appointment{ID: 5, CustomerID: 7, Status: domain.StatusPending, ProgressStep: 0}
	svc := newTestService(repo)

	resp, err := svc.Approve(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)
	assert.Equal(t, 0, resp.ProgressStep)

	// Повторное подтверждение - недопустимый переход
	_, err = svc.Approve(context.Background(), 5)
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestReject(t *testing.T) {
	repo := newFakeRepo()
	repo.byID[5] = &domain.Appointment{ID: 5, CustomerID: 7, Status: domain.StatusPending}
	repo.byID[6] = &domain.Appointment{ID: 6, CustomerID: 7, Status: domain.StatusCompleted}
	svc := newTestService(repo)

	resp, err := svc.Reject(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)

	_, err = svc.Reject(context.Background(), 6)
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestComplete(t *testing.T) {
	repo := newFakeRepo()
	repo.byID[5] = &domain.Appointment{ID: 5, CustomerID: 7, Status: domain.StatusInProgress, ProgressStep: 4}
	repo.byID[6] = &domain.Appointment{ID: 6, CustomerID: 7, Status: domain.StatusPending}
	svc := newTestService(repo)

	resp, err := svc.Complete(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), resp.Status)
	// Статус и шаг записываются вместе
	assert.Equal(t, domain.StepWorkCompleted, resp.ProgressStep)

	_, err = svc.Complete(context.Background(), 6)
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestSetProgressStep(t *testing.T) {
	repo := newFakeRepo()
	repo.byID[5] = &domain.Appointment{ID: 5, CustomerID: 7, Status: domain.StatusScheduled, ProgressStep: 0}
	svc := newTestService(repo)

	// Движение вперед
	resp, err := svc.SetProgressStep(context.Background(), 5, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.ProgressStep)
	assert.Equal(t, string(domain.StatusInProgress), resp.Status)

	// Движение назад допустимо
	resp, err = svc.SetProgressStep(context.Background(), 5, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.ProgressStep)

	// Повторная установка того же шага идемпотентна
	resp, err = svc.SetProgressStep(context.Background(), 5, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.ProgressStep)
	assert.Equal(t, string(domain.StatusInProgress), resp.Status)

	// Шаг завершения и выдачи пересчитывают статус
	resp, err = svc.SetProgressStep(context.Background(), 5, domain.StepWorkCompleted)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), resp.Status)

	resp, err = svc.SetProgressStep(context.Background(), 5, domain.StepVehiclePickedUp)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPickedUp), resp.Status)

	// Вне диапазона
	_, err = svc.SetProgressStep(context.Background(), 5, 8)
	require.ErrorIs(t, err, ErrStepOutOfRange)
	_, err = svc.SetProgressStep(context.Background(), 5, -1)
	require.ErrorIs(t, err, ErrStepOutOfRange)
}

func TestArchive(t *testing.T) {
	repo := newFakeRepo()
	repo.byID[5] = &domain.Appointment{ID: 5, CustomerID: 7, Status: domain.StatusCancelled}
	svc := newTestService(repo)

	// Архивирование допустимо из любого статуса
	resp, err := svc.Archive(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusArchived), resp.Status)
}

func TestCancel(t *testing.T) {
	repo := newFakeRepo()
	notes := "front brakes squeaking"
	repo.byID[5] = &domain.Appointment{ID: 5, CustomerID: 7, Status: domain.StatusScheduled, Notes: &notes}
	repo.byID[6] = &domain.Appointment{ID: 6, CustomerID: 7, Status: domain.StatusCompleted}
	svc := newTestService(repo)

	// Причина дописывается в заметки в квадратных скобках
	resp, err := svc.Cancel(context.Background(), 5, &models.CancelRequest{Principal: owner, Reason: "going on leave"})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.Equal(t, " [User Cancelled: going on leave]", repo.cancelled[5])
	require.NotNil(t, resp.Notes)
	assert.Equal(t, "front brakes squeaking [User Cancelled: going on leave]", *resp.Notes)

	// Завершенную запись отменить нельзя
	_, err = svc.Cancel(context.Background(), 6, &models.CancelRequest{Principal: owner})
	require.ErrorIs(t, err, ErrTerminalState)

	// Чужую запись отменить нельзя
	repo.byID[7] = &domain.Appointment{ID: 7, CustomerID: 99, Status: domain.StatusPending}
	_, err = svc.Cancel(context.Background(), 7, &models.CancelRequest{Principal: owner})
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestList_StatusFilter(t *testing.T) {
	repo := newFakeRepo()
	repo.byID[1] = &domain.Appointment{ID: 1, CustomerID: 7, Status: domain.StatusPending}
	repo.byID[2] = &domain.Appointment{ID: 2, CustomerID: 7, Status: domain.StatusArchived}
	svc := newTestService(repo)

	// Архивные записи по умолчанию скрыты
	resp, err := svc.List(context.Background(), &models.ListRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Appointments, 1)

	// Нераспознанный статус отклоняется
	badStatus := "Parked"
	_, err = svc.List(context.Background(), &models.ListRequest{Status: &badStatus})
	require.ErrorIs(t, err, ErrInvalidStatus)
}
