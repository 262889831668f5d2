package customers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qb-auto/QB-AppointmentService/internal/domain"
	customerRepo "github.com/qb-auto/QB-AppointmentService/internal/infra/storage/customer"
	"github.com/qb-auto/QB-AppointmentService/internal/service/customers/models"
)

type fakeCustomerRepo struct {
	byID       map[int64]*domain.Customer
	emailTaken string
	phoneTaken string
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{byID: make(map[int64]*domain.Customer)}
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	if c, ok := f.byID[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, customerRepo.ErrCustomerNotFound
}

func (f *fakeCustomerRepo) UpdateProfile(_ context.Context, c *domain.Customer) error {
	if c.Email == f.emailTaken {
		return customerRepo.ErrEmailTaken
	}
	if c.Phone == f.phoneTaken {
		return customerRepo.ErrPhoneTaken
	}
	if _, ok := f.byID[c.ID]; !ok {
		return customerRepo.ErrCustomerNotFound
	}
	f.byID[c.ID] = c
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validUpdate() *models.UpdateProfileRequest {
	return &models.UpdateProfileRequest{
		CustomerID:       7,
		FullName:         "Jane Wanjiku",
		Email:            "jane@example.com",
		Phone:            "+254712345678",
		PreferredContact: "Phone",
	}
}

func TestGetProfile(t *testing.T) {
	repo := newFakeCustomerRepo()
	repo.byID[7] = &domain.Customer{ID: 7, FullName: "Jane Wanjiku", PreferredContact: domain.ContactEmail}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetProfile(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Jane Wanjiku", resp.FullName)

	_, err = svc.GetProfile(context.Background(), 404)
	require.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestUpdateProfile(t *testing.T) {
	repo := newFakeCustomerRepo()
	repo.byID[7] = &domain.Customer{ID: 7, FullName: "Jane W", Email: "old@example.com"}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.UpdateProfile(context.Background(), validUpdate())
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", resp.Email)
	assert.Equal(t, "Phone", resp.PreferredContact)
}

func TestUpdateProfile_UniquenessConflicts(t *testing.T) {
	repo := newFakeCustomerRepo()
	repo.byID[7] = &domain.Customer{ID: 7}
	svc := NewService(repo, nopLogger{})

	repo.emailTaken = "jane@example.com"
	_, err := svc.UpdateProfile(context.Background(), validUpdate())
	require.ErrorIs(t, err, ErrEmailTaken)

	repo.emailTaken = ""
	repo.phoneTaken = "+254712345678"
	_, err = svc.UpdateProfile(context.Background(), validUpdate())
	require.ErrorIs(t, err, ErrPhoneTaken)
}

func TestUpdateProfile_Validation(t *testing.T) {
	repo := newFakeCustomerRepo()
	repo.byID[7] = &domain.Customer{ID: 7}
	svc := NewService(repo, nopLogger{})

	req := validUpdate()
	req.FullName = " "
	_, err := svc.UpdateProfile(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidInput)

	req = validUpdate()
	req.PreferredContact = "Carrier Pigeon"
	_, err = svc.UpdateProfile(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidInput)
}
