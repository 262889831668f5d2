package reschedule_appointment

import (
	"time"

	"github.com/qb-auto/QB-AppointmentService/internal/domain"
	rescheduleAppointment "github.com/qb-auto/QB-AppointmentService/internal/usecase/reschedule_appointment"
	"github.com/qb-auto/QB-AppointmentService/pkg/types"
)

// RescheduleAppointmentRequest HTTP request model
type RescheduleAppointmentRequest struct {
	PreferredDate string   `json:"preferredDate"` // "2025-10-15"
	PreferredTime string   `json:"preferredTime"` // "10:00"
	Notes         *string  `json:"notes,omitempty"`
	Services      []string `json:"services"`
}

// RescheduledAppointmentResponse HTTP response model
type RescheduledAppointmentResponse struct {
	ID            int64    `json:"id"`
	CustomerID    int64    `json:"customerId"`
	VehicleID     int64    `json:"vehicleId"`
	PreferredDate string   `json:"preferredDate"`
	PreferredTime string   `json:"preferredTime"`
	Status        string   `json:"status"`
	ProgressStep  int      `json:"progressStep"`
	Services      []string `json:"services"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleAppointmentRequest) ToUseCaseRequest(appointmentID, customerID int64) (*rescheduleAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.PreferredDate)
	if err != nil {
		return nil, err
	}

	preferredTime, err := types.NewTimeStringFromString(r.PreferredTime)
	if err != nil {
		return nil, err
	}

	return &rescheduleAppointment.Request{
		AppointmentID: appointmentID,
		CustomerID:    customerID,
		Date:          date,
		Time:          preferredTime,
		Notes:         r.Notes,
		Services:      r.Services,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleAppointment.Response) *RescheduledAppointmentResponse {
	return &RescheduledAppointmentResponse{
		ID:            resp.ID,
		CustomerID:    resp.CustomerID,
		VehicleID:     resp.VehicleID,
		PreferredDate: resp.PreferredDate.Format(domain.DateFormat),
		PreferredTime: resp.PreferredTime.String(),
		Status:        resp.Status,
		ProgressStep:  resp.ProgressStep,
		Services:      resp.Services,
	}
}
