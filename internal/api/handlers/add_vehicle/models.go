package add_vehicle

import (
	"github.com/qb-auto/QB-AppointmentService/internal/service/vehicles/models"
)

// AddVehicleRequest HTTP request model
type AddVehicleRequest struct {
	LicensePlate string `json:"licensePlate"`
	Model        string `json:"model"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *AddVehicleRequest) ToServiceRequest(customerID int64) *models.AddVehicleRequest {
	return &models.AddVehicleRequest{
		CustomerID:   customerID,
		LicensePlate: r.LicensePlate,
		Model:        r.Model,
	}
}
