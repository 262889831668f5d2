package update_vehicle

import (
	"github.com/qb-auto/QB-AppointmentService/internal/service/vehicles/models"
)

// UpdateVehicleRequest HTTP request model
type UpdateVehicleRequest struct {
	LicensePlate string `json:"licensePlate"`
	Model        string `json:"model"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateVehicleRequest) ToServiceRequest(customerID int64) *models.UpdateVehicleRequest {
	return &models.UpdateVehicleRequest{
		CustomerID:   customerID,
		LicensePlate: r.LicensePlate,
		Model:        r.Model,
	}
}
