package customers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/qb-auto/QB-AppointmentService/internal/domain"
	customerRepo "github.com/qb-auto/QB-AppointmentService/internal/infra/storage/customer"
	"github.com/qb-auto/QB-AppointmentService/internal/service/customers/models"
)

// Service сервис для работы с профилями клиентов
type Service struct {
	customerRepo CustomerRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса профилей
func NewService(customerRepo CustomerRepository, logger Logger) *Service {
	return &Service{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// GetProfile получает профиль клиента
func (s *Service) GetProfile(ctx context.Context, customerID int64) (*models.CustomerResponse, error) {
	s.logger.Info("GetProfile: fetching profile for customer=%d", customerID)

	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("GetProfile: customer=%d not found", customerID)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("GetProfile: repository error for customer=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: GetProfile - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetProfile: successfully fetched profile for customer=%d", customerID)
	return models.FromDomainCustomer(customer), nil
}

// UpdateProfile изменяет профиль клиента
// Email и телефон должны оставаться уникальными
func (s *Service) UpdateProfile(ctx context.Context, req *models.UpdateProfileRequest) (*models.CustomerResponse, error) {
	s.logger.Info("UpdateProfile: updating profile for customer=%d", req.CustomerID)

	if err := validateProfile(req); err != nil {
		s.logger.Warn("UpdateProfile: invalid profile data for customer=%d: %v", req.CustomerID, err)
		return nil, err
	}

	customer, err := s.customerRepo.GetByID(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("UpdateProfile: customer=%d not found", req.CustomerID)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("UpdateProfile: repository error for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: UpdateProfile - repository error: %v", ErrInternal, err)
	}

	customer.FullName = strings.TrimSpace(req.FullName)
	customer.Email = strings.TrimSpace(req.Email)
	customer.Phone = strings.TrimSpace(req.Phone)
	customer.PreferredContact = domain.ContactChannel(req.PreferredContact)

	if err := s.customerRepo.UpdateProfile(ctx, customer); err != nil {
		switch {
		case errors.Is(err, customerRepo.ErrEmailTaken):
			s.logger.Warn("UpdateProfile: email already taken for customer=%d", req.CustomerID)
			return nil, ErrEmailTaken
		case errors.Is(err, customerRepo.ErrPhoneTaken):
			s.logger.Warn("UpdateProfile: phone already taken for customer=%d", req.CustomerID)
			return nil, ErrPhoneTaken
		case errors.Is(err, customerRepo.ErrCustomerNotFound):
			s.logger.Warn("UpdateProfile: customer=%d not found on update", req.CustomerID)
			return nil, ErrCustomerNotFound
		default:
			s.logger.Error("UpdateProfile: failed to update customer=%d: %v", req.CustomerID, err)
			return nil, fmt.Errorf("%w: UpdateProfile - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("UpdateProfile: profile updated for customer=%d", req.CustomerID)
	return models.FromDomainCustomer(customer), nil
}

// validateProfile проверяет обязательные поля и канал связи
func validateProfile(req *models.UpdateProfileRequest) error {
	if strings.TrimSpace(req.FullName) == "" {
		return fmt.Errorf("%w: full name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	switch domain.ContactChannel(req.PreferredContact) {
	case domain.ContactEmail, domain.ContactPhone:
	default:
		return fmt.Errorf("%w: unknown preferred contact %q", ErrInvalidInput, req.PreferredContact)
	}

	return nil
}
