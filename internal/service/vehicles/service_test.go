package vehicles

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qb-auto/QB-AppointmentService/internal/domain"
	appointmentRepo "github.com/qb-auto/QB-AppointmentService/internal/infra/storage/appointment"
	vehicleRepo "github.com/qb-auto/QB-AppointmentService/internal/infra/storage/vehicle"
	"github.com/qb-auto/QB-AppointmentService/internal/service/vehicles/models"
)

type fakeVehicleRepo struct {
	nextID  int64
	byID    map[int64]*domain.Vehicle
	deleted []int64
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{nextID: 1, byID: make(map[int64]*domain.Vehicle)}
}

func (f *fakeVehicleRepo) Create(_ context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	for _, existing := range f.byID {
		if existing.LicensePlate == v.LicensePlate {
			return nil, vehicleRepo.ErrDuplicatePlate
		}
	}
	created := *v
	created.ID = f.nextID
	f.nextID++
	f.byID[created.ID] = &created
	return &created, nil
}

func (f *fakeVehicleRepo) GetByID(_ context.Context, id int64) (*domain.Vehicle, error) {
	if v, ok := f.byID[id]; ok {
		copied := *v
		return &copied, nil
	}
	return nil, vehicleRepo.ErrVehicleNotFound
}

func (f *fakeVehicleRepo) GetByCustomerID(_ context.Context, customerID int64) ([]*domain.Vehicle, error) {
	var result []*domain.Vehicle
	for _, v := range f.byID {
		if v.CustomerID == customerID {
			result = append(result, v)
		}
	}
	return result, nil
}

func (f *fakeVehicleRepo) CountByCustomer(_ context.Context, customerID int64) (int, error) {
	count := 0
	for _, v := range f.byID {
		if v.CustomerID == customerID {
			count++
		}
	}
	return count, nil
}

func (f *fakeVehicleRepo) Update(_ context.Context, v *domain.Vehicle) error {
	for id, existing := range f.byID {
		if id != v.ID && existing.LicensePlate == v.LicensePlate {
			return vehicleRepo.ErrDuplicatePlate
		}
	}
	stored, ok := f.byID[v.ID]
	if !ok || stored.CustomerID != v.CustomerID {
		return vehicleRepo.ErrVehicleNotFound
	}
	f.byID[v.ID] = v
	return nil
}

func (f *fakeVehicleRepo) Delete(_ context.Context, id, customerID int64) error {
	stored, ok := f.byID[id]
	if !ok || stored.CustomerID != customerID {
		return vehicleRepo.ErrVehicleNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeAppointmentFinder struct {
	activeByCar map[int64]*domain.Appointment
}

func (f *fakeAppointmentFinder) FindActive(_ context.Context, _, vehicleID int64) (*domain.Appointment, error) {
	if appt, ok := f.activeByCar[vehicleID]; ok {
		return appt, nil
	}
	return nil, appointmentRepo.ErrAppointmentNotFound
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(repo *fakeVehicleRepo, finder *fakeAppointmentFinder) *Service {
	if finder == nil {
		finder = &fakeAppointmentFinder{activeByCar: make(map[int64]*domain.Appointment)}
	}
	return NewService(repo, finder, nopLogger{})
}

func TestAdd_NormalizesPlate(t *testing.T) {
	repo := newFakeVehicleRepo()
	svc := newTestService(repo, nil)

	resp, err := svc.Add(context.Background(), &models.AddVehicleRequest{
		CustomerID:   7,
		LicensePlate: " kbc123x ",
		Model:        "Toyota Axio",
	})
	require.NoError(t, err)
	assert.Equal(t, "KBC123X", resp.LicensePlate)
}

func TestAdd_VehicleLimit(t *testing.T) {
	repo := newFakeVehicleRepo()
	svc := newTestService(repo, nil)

	for i := 0; i < domain.MaxVehiclesPerCustomer; i++ {
		_, err := svc.Add(context.Background(), &models.AddVehicleRequest{
			CustomerID:   7,
			LicensePlate: string(rune('A'+i)) + "BC100",
			Model:        "Toyota Axio",
		})
		require.NoError(t, err)
	}

	// Шестой автомобиль - отказ
	_, err := svc.Add(context.Background(), &models.AddVehicleRequest{
		CustomerID:   7,
		LicensePlate: "FBC100",
		Model:        "Toyota Axio",
	})
	require.ErrorIs(t, err, ErrVehicleLimitReached)

	// Лимит действует на клиента, а не глобально
	_, err = svc.Add(context.Background(), &models.AddVehicleRequest{
		CustomerID:   8,
		LicensePlate: "GBC100",
		Model:        "Honda Fit",
	})
	require.NoError(t, err)
}

func TestAdd_DuplicatePlate(t *testing.T) {
	repo := newFakeVehicleRepo()
	svc := newTestService(repo, nil)

	_, err := svc.Add(context.Background(), &models.AddVehicleRequest{
		CustomerID: 7, LicensePlate: "KBC123X", Model: "Toyota Axio",
	})
	require.NoError(t, err)

	// Тот же номер в другом регистре - дубликат
	_, err = svc.Add(context.Background(), &models.AddVehicleRequest{
		CustomerID: 8, LicensePlate: "kbc123x", Model: "Honda Fit",
	})
	require.ErrorIs(t, err, ErrDuplicatePlate)
}

func TestAdd_MissingFields(t *testing.T) {
	svc := newTestService(newFakeVehicleRepo(), nil)

	_, err := svc.Add(context.Background(), &models.AddVehicleRequest{CustomerID: 7, Model: "Toyota Axio"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Add(context.Background(), &models.AddVehicleRequest{CustomerID: 7, LicensePlate: "KBC123X"})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_OwnershipCheck(t *testing.T) {
	repo := newFakeVehicleRepo()
	repo.byID[1] = &domain.Vehicle{ID: 1, CustomerID: 7, LicensePlate: "KBC123X", Model: "Toyota Axio"}
	svc := newTestService(repo, nil)

	resp, err := svc.Update(context.Background(), 1, &models.UpdateVehicleRequest{
		CustomerID: 7, LicensePlate: "KBC123X", Model: "Toyota Axio 2019",
	})
	require.NoError(t, err)
	assert.Equal(t, "Toyota Axio 2019", resp.Model)

	// Чужой автомобиль редактировать нельзя
	_, err = svc.Update(context.Background(), 1, &models.UpdateVehicleRequest{
		CustomerID: 8, LicensePlate: "KBC123X", Model: "Honda Fit",
	})
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestDelete_RefusesActiveAppointment(t *testing.T) {
	repo := newFakeVehicleRepo()
	repo.byID[1] = &domain.Vehicle{ID: 1, CustomerID: 7, LicensePlate: "KBC123X"}
	finder := &fakeAppointmentFinder{activeByCar: map[int64]*domain.Appointment{
		1: {ID: 11, Status: domain.StatusScheduled},
	}}
	svc := newTestService(repo, finder)

	err := svc.Delete(context.Background(), 1, 7)
	require.ErrorIs(t, err, ErrVehicleHasActiveAppointment)
	assert.Empty(t, repo.deleted)

	// После завершения записи автомобиль удаляется
	delete(finder.activeByCar, 1)
	require.NoError(t, svc.Delete(context.Background(), 1, 7))
	assert.Equal(t, []int64{1}, repo.deleted)
}

func TestDelete_ForeignVehicleDenied(t *testing.T) {
	repo := newFakeVehicleRepo()
	repo.byID[1] = &domain.Vehicle{ID: 1, CustomerID: 7, LicensePlate: "KBC123X"}
	svc := newTestService(repo, nil)

	err := svc.Delete(context.Background(), 1, 8)
	require.ErrorIs(t, err, ErrAccessDenied)
}
