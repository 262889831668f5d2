package models

import (
	"time"

	"github.com/qb-auto/QB-AppointmentService/internal/domain"
)

// Request модели

// AddVehicleRequest запрос на добавление автомобиля в гараж
type AddVehicleRequest struct {
	CustomerID   int64  `json:"-"`
	LicensePlate string `json:"licensePlate"`
	Model        string `json:"model"`
}

// UpdateVehicleRequest запрос на изменение данных автомобиля
type UpdateVehicleRequest struct {
	CustomerID   int64  `json:"-"`
	LicensePlate string `json:"licensePlate"`
	Model        string `json:"model"`
}

// Response модели

// VehicleResponse ответ с данными автомобиля
type VehicleResponse struct {
	ID           int64     `json:"id"`
	CustomerID   int64     `json:"customerId"`
	LicensePlate string    `json:"licensePlate"`
	Model        string    `json:"model"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// VehicleListResponse ответ со списком автомобилей клиента
type VehicleListResponse struct {
	Vehicles []VehicleResponse `json:"vehicles"`
}

// Методы конвертации

// FromDomainVehicle конвертирует domain модель в DTO
func FromDomainVehicle(v *domain.Vehicle) *VehicleResponse {
	if v == nil {
		return nil
	}

	return &VehicleResponse{
		ID:           v.ID,
		CustomerID:   v.CustomerID,
		LicensePlate: v.LicensePlate,
		Model:        v.Model,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

// FromDomainVehicleList конвертирует список domain моделей в DTO
func FromDomainVehicleList(vehicles []*domain.Vehicle) *VehicleListResponse {
	resp := &VehicleListResponse{
		Vehicles: make([]VehicleResponse, 0, len(vehicles)),
	}

	for _, v := range vehicles {
		if vehicleResp := FromDomainVehicle(v); vehicleResp != nil {
			resp.Vehicles = append(resp.Vehicles, *vehicleResp)
		}
	}

	return resp
}
