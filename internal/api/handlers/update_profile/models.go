package update_profile

import (
	"github.com/qb-auto/QB-AppointmentService/internal/service/customers/models"
)

// UpdateProfileRequest HTTP request model
type UpdateProfileRequest struct {
	FullName         string `json:"fullName"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	PreferredContact string `json:"preferredContact"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateProfileRequest) ToServiceRequest(customerID int64) *models.UpdateProfileRequest {
	return &models.UpdateProfileRequest{
		CustomerID:       customerID,
		FullName:         r.FullName,
		Email:            r.Email,
		Phone:            r.Phone,
		PreferredContact: r.PreferredContact,
	}
}
