package cancel_appointment

import (
	"github.com/qb-auto/QB-AppointmentService/internal/domain"
	"github.com/qb-auto/QB-AppointmentService/internal/service/appointments/models"
)

// CancelAppointmentRequest HTTP request model
type CancelAppointmentRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CancelAppointmentRequest) ToServiceRequest(principal domain.Principal) *models.CancelRequest {
	reason := ""
	if r.Reason != nil {
		reason = *r.Reason
	}

	return &models.CancelRequest{
		Principal: principal,
		Reason:    reason,
	}
}
