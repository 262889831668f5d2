package book_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qb-auto/QB-AppointmentService/internal/domain"
	apptRepo "github.com/qb-auto/QB-AppointmentService/internal/infra/storage/appointment"
	vehicleRepo "github.com/qb-auto/QB-AppointmentService/internal/infra/storage/vehicle"
	"github.com/qb-auto/QB-AppointmentService/pkg/types"
)

// Фейки репозиториев для тестирования конвейера бронирования

type fakeApptRepo struct {
	nextID       int64
	created      []*domain.Appointment
	services     map[int64][]string
	activeByCar  map[int64]*domain.Appointment
	replaceCalls int
}

func newFakeApptRepo() *fakeApptRepo {
	return &fakeApptRepo{
		nextID:      1,
		services:    make(map[int64][]string),
		activeByCar: make(map[int64]*domain.Appointment),
	}
}

func (f *fakeApptRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	created := *appt
	created.ID = f.nextID
	f.nextID++
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.created = append(f.created, &created)
	return &created, nil
}

func (f *fakeApptRepo) FindActive(_ context.Context, _, vehicleID int64) (*domain.Appointment, error) {
	if appt, ok := f.activeByCar[vehicleID]; ok {
		return appt, nil
	}
	return nil, apptRepo.ErrAppointmentNotFound
}

func (f *fakeApptRepo) ReplaceServices(_ context.Context, appointmentID int64, services []string) error {
	f.replaceCalls++
	f.services[appointmentID] = services
	return nil
}

type fakeVehicleRepo struct {
	nextID   int64
	byPlate  map[string]*domain.Vehicle
	creates  int
	failDupe bool
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{nextID: 1, byPlate: make(map[string]*domain.Vehicle)}
}

func (f *fakeVehicleRepo) FindByPlate(_ context.Context, plate string) (*domain.Vehicle, error) {
	if v, ok := f.byPlate[plate]; ok {
		return v, nil
	}
	return nil, vehicleRepo.ErrVehicleNotFound
}

func (f *fakeVehicleRepo) Create(_ context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	if f.failDupe {
		return nil, vehicleRepo.ErrDuplicatePlate
	}
	f.creates++
	created := *v
	created.ID = f.nextID
	f.nextID++
	f.byPlate[created.LicensePlate] = &created
	return &created, nil
}

type fakeCustomerRepo struct {
	phone string
}

func (f *fakeCustomerRepo) GetPhone(_ context.Context, _ int64) (string, error) {
	return f.phone, nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
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

// testEnv собирает use case с фейками; "сегодня" - 1 октября 2025
type testEnv struct {
	uc       *UseCase
	appts    *fakeApptRepo
	vehicles *fakeVehicleRepo
	tx       *fakeTxManager
}

func newTestEnv(phone string) *testEnv {
	appts := newFakeApptRepo()
	vehicles := newFakeVehicleRepo()
	tx := &fakeTxManager{}

	uc := NewUseCase(appts, vehicles, &fakeCustomerRepo{phone: phone}, tx, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)}

	return &testEnv{uc: uc, appts: appts, vehicles: vehicles, tx: tx}
}

func validRequest() *Request {
	return &Request{
		CustomerID: 7,
		Phone:      "+254 712-345-678",
		Plate:      " kbc123x ",
		Model:      "Toyota Axio",
		Date:       time.Date(2025, 10, 2, 0, 0, 0, 0, time.UTC),
		Time:       types.TimeString("10:00"),
		Services:   []string{"Oil Change", " Oil Change ", "", "Brake Check"},
	}
}

func TestExecute_NewPlateRegistersVehicle(t *testing.T) {
	env := newTestEnv("254712345678")

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Ровно один автомобиль, одна запись, один набор услуг
	assert.Equal(t, 1, env.vehicles.creates)
	require.Len(t, env.appts.created, 1)
	assert.Equal(t, 1, env.appts.replaceCalls)
	assert.Equal(t, 1, env.tx.calls)

	assert.True(t, resp.VehicleCreated)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, 0, resp.ProgressStep)

	// Номер нормализован, услуги очищены от пустых и дубликатов
	created := env.vehicles.byPlate["KBC123X"]
	require.NotNil(t, created)
	assert.Equal(t, int64(7), created.CustomerID)
	assert.Equal(t, []string{"Oil Change", "Brake Check"}, resp.Services)
}

func TestExecute_ReusesOwnVehicle(t *testing.T) {
	env := newTestEnv("254712345678")
	env.vehicles.byPlate["KBC123X"] = &domain.Vehicle{ID: 3, CustomerID: 7, LicensePlate: "KBC123X"}

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.False(t, resp.VehicleCreated)
	assert.Equal(t, int64(3), resp.VehicleID)
	assert.Equal(t, 0, env.vehicles.creates)
}

func TestExecute_PlateOwnedByOtherCustomer(t *testing.T) {
	env := newTestEnv("254712345678")
	env.vehicles.byPlate["KBC123X"] = &domain.Vehicle{ID: 3, CustomerID: 99, LicensePlate: "KBC123X"}

	_, err := env.uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrPlateOwnedByOther)
	assert.Empty(t, env.appts.created)
}

func TestExecute_ConcurrentPlateRegistration(t *testing.T) {
	// Уникальный индекс сработал на вставке - номер уже занят другим клиентом
	env := newTestEnv("254712345678")
	env.vehicles.failDupe = true

	_, err := env.uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrPlateOwnedByOther)
	assert.Empty(t, env.appts.created)
}

func TestExecute_ActiveAppointmentBlocksBooking(t *testing.T) {
	env := newTestEnv("254712345678")
	env.vehicles.byPlate["KBC123X"] = &domain.Vehicle{ID: 3, CustomerID: 7, LicensePlate: "KBC123X"}
	env.appts.activeByCar[3] = &domain.Appointment{ID: 11, Status: domain.StatusScheduled}

	_, err := env.uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrActiveAppointmentExists)

	// Никаких вставок после отказа
	assert.Empty(t, env.appts.created)
	assert.Equal(t, 0, env.appts.replaceCalls)
}

func TestExecute_PhoneMismatch(t *testing.T) {
	env := newTestEnv("254700000000")

	_, err := env.uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrPhoneMismatch)
	assert.Equal(t, 0, env.tx.calls)
}

func TestExecute_DateMustBeTomorrowOrLater(t *testing.T) {
	env := newTestEnv("254712345678")

	// Сегодня - отказ
	req := validRequest()
	req.Date = time.Date(2025, 10, 1, 23, 0, 0, 0, time.UTC)
	_, err := env.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrDateNotInFuture)

	// Вчера - отказ
	req = validRequest()
	req.Date = time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC)
	_, err = env.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrDateNotInFuture)

	// Завтра - успех
	req = validRequest()
	req.Date = time.Date(2025, 10, 2, 0, 0, 0, 0, time.UTC)
	_, err = env.uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestExecute_MissingFields(t *testing.T) {
	env := newTestEnv("254712345678")

	mutations := map[string]func(*Request){
		"phone":    func(r *Request) { r.Phone = "  " },
		"plate":    func(r *Request) { r.Plate = "" },
		"model":    func(r *Request) { r.Model = "" },
		"date":     func(r *Request) { r.Date = time.Time{} },
		"time":     func(r *Request) { r.Time = "" },
		"services": func(r *Request) { r.Services = []string{" ", ""} },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			req := validRequest()
			mutate(req)
			_, err := env.uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, ErrMissingField)
		})
	}
}

func TestCleanServices(t *testing.T) {
	cleaned := cleanServices([]string{" Oil Change ", "Oil Change", "", "Tire Rotation"})
	assert.Equal(t, []string{"Oil Change", "Tire Rotation"}, cleaned)

	assert.Empty(t, cleanServices(nil))
}
