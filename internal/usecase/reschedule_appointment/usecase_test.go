package reschedule_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qb-auto/QB-AppointmentService/internal/domain"
	apptRepo "github.com/qb-auto/QB-AppointmentService/internal/infra/storage/appointment"
	"github.com/qb-auto/QB-AppointmentService/pkg/types"
)

type fakeApptRepo struct {
	byID         map[int64]*domain.Appointment
	rescheduled  map[int64]*domain.Appointment
	services     map[int64][]string
	replaceCalls int
}

func newFakeApptRepo() *fakeApptRepo {
	return &fakeApptRepo{
		byID:        make(map[int64]*domain.Appointment),
		rescheduled: make(map[int64]*domain.Appointment),
		services:    make(map[int64][]string),
	}
}

func (f *fakeApptRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	if appt, ok := f.byID[id]; ok {
		copied := *appt
		return &copied, nil
	}
	return nil, apptRepo.ErrAppointmentNotFound
}

func (f *fakeApptRepo) Reschedule(_ context.Context, id int64, appt *domain.Appointment) error {
	stored, ok := f.byID[id]
	if !ok || stored.Status == domain.StatusCompleted {
		return apptRepo.ErrAppointmentNotFound
	}
	f.rescheduled[id] = appt
	return nil
}

func (f *fakeApptRepo) ReplaceServices(_ context.Context, appointmentID int64, services []string) error {
	f.replaceCalls++
	f.services[appointmentID] = services
	return nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *fakeApptRepo) *UseCase {
	uc := NewUseCase(repo, &fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func validRequest() *Request {
	return &Request{
		AppointmentID: 5,
		CustomerID:    7,
		Date:          time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC),
		Time:          types.TimeString("14:30"),
		Services:      []string{"Wheel Alignment"},
	}
}

func TestExecute_ResetsStatusAndProgress(t *testing.T) {
	repo := newFakeApptRepo()
	repo.byID[5] = &domain.Appointment{
		ID:           5,
		CustomerID:   7,
		VehicleID:    3,
		Status:       domain.StatusInProgress,
		ProgressStep: 5,
	}

	resp, err := newTestUseCase(repo).Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Перенос перезапускает процесс с нуля
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, 0, resp.ProgressStep)
	assert.Equal(t, "14:30", resp.PreferredTime.String())
	assert.Equal(t, []string{"Wheel Alignment"}, resp.Services)

	require.Contains(t, repo.rescheduled, int64(5))
	assert.Equal(t, 1, repo.replaceCalls)
}

func TestExecute_CompletedCannotBeRescheduled(t *testing.T) {
	repo := newFakeApptRepo()
	repo.byID[5] = &domain.Appointment{ID: 5, CustomerID: 7, Status: domain.StatusCompleted}

	_, err := newTestUseCase(repo).Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrTerminalState)
	assert.Empty(t, repo.rescheduled)
}

func TestExecute_ForeignAppointmentDenied(t *testing.T) {
	repo := newFakeApptRepo()
	repo.byID[5] = &domain.Appointment{ID: 5, CustomerID: 99, Status: domain.StatusPending}

	_, err := newTestUseCase(repo).Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_NotFound(t *testing.T) {
	repo := newFakeApptRepo()

	_, err := newTestUseCase(repo).Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_DateMustBeTomorrowOrLater(t *testing.T) {
	repo := newFakeApptRepo()
	repo.byID[5] = &domain.Appointment{ID: 5, CustomerID: 7, Status: domain.StatusScheduled}

	req := validRequest()
	req.Date = time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)

	_, err := newTestUseCase(repo).Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrDateNotInFuture)
}
