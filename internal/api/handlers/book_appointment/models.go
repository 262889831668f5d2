package book_appointment

import (
	"time"

	"github.com/qb-auto/QB-AppointmentService/internal/domain"
	bookAppointment "github.com/qb-auto/QB-AppointmentService/internal/usecase/book_appointment"
	"github.com/qb-auto/QB-AppointmentService/pkg/types"
)

// BookAppointmentRequest HTTP request model
type BookAppointmentRequest struct {
	Phone         string   `json:"phone"`
	LicensePlate  string   `json:"licensePlate"`
	VehicleModel  string   `json:"vehicleModel"`
	PreferredDate string   `json:"preferredDate"` // "2025-10-15"
	PreferredTime string   `json:"preferredTime"` // "10:00"
	Notes         *string  `json:"notes,omitempty"`
	Services      []string `json:"services"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID             int64    `json:"id"`
	CustomerID     int64    `json:"customerId"`
	VehicleID      int64    `json:"vehicleId"`
	PreferredDate  string   `json:"preferredDate"`
	PreferredTime  string   `json:"preferredTime"`
	Status         string   `json:"status"`
	ProgressStep   int      `json:"progressStep"`
	Notes          *string  `json:"notes,omitempty"`
	Services       []string `json:"services"`
	VehicleCreated bool     `json:"vehicleCreated"`
	CreatedAt      string   `json:"createdAt"`
	UpdatedAt      string   `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookAppointmentRequest) ToUseCaseRequest(customerID int64) (*bookAppointment.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.PreferredDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	preferredTime, err := types.NewTimeStringFromString(r.PreferredTime)
	if err != nil {
		return nil, err
	}

	return &bookAppointment.Request{
		CustomerID: customerID,
		Phone:      r.Phone,
		Plate:      r.LicensePlate,
		Model:      r.VehicleModel,
		Date:       date,
		Time:       preferredTime,
		Notes:      r.Notes,
		Services:   r.Services,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:             resp.ID,
		CustomerID:     resp.CustomerID,
		VehicleID:      resp.VehicleID,
		PreferredDate:  resp.PreferredDate.Format(domain.DateFormat),
		PreferredTime:  resp.PreferredTime.String(),
		Status:         resp.Status,
		ProgressStep:   resp.ProgressStep,
		Notes:          resp.Notes,
		Services:       resp.Services,
		VehicleCreated: resp.VehicleCreated,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
