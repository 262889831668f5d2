package models

import (
	"time"

	"github.com/qb-auto/QB-AppointmentService/internal/domain"
)

// Request модели

// UpdateProfileRequest запрос на изменение профиля клиента
type UpdateProfileRequest struct {
	CustomerID       int64  `json:"-"`
	FullName         string `json:"fullName"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	PreferredContact string `json:"preferredContact"`
}

// Response модели

// CustomerResponse ответ с профилем клиента
type CustomerResponse struct {
	ID               int64     `json:"id"`
	FullName         string    `json:"fullName"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	PreferredContact string    `json:"preferredContact"`
	MemberSince      time.Time `json:"memberSince"`
	ProfilePhoto     *string   `json:"profilePhoto,omitempty"`
}

// Методы конвертации

// FromDomainCustomer конвертирует domain модель в DTO
func FromDomainCustomer(c *domain.Customer) *CustomerResponse {
	if c == nil {
		return nil
	}

	return &CustomerResponse{
		ID:               c.ID,
		FullName:         c.FullName,
		Email:            c.Email,
		Phone:            c.Phone,
		PreferredContact: string(c.PreferredContact),
		MemberSince:      c.MemberSince,
		ProfilePhoto:     c.ProfilePhoto,
	}
}
