package models

import (
	"time"

	"github.com/qb-auto/QB-AppointmentService/internal/domain"
)

// Request модели

// CancelRequest запрос клиента на отмену записи
type CancelRequest struct {
	Principal domain.Principal
	Reason    string // Причина отмены (опционально, дописывается в заметки)
}

// ListRequest запрос на выборку записей в панели администратора
type ListRequest struct {
	Status          *string    `json:"status,omitempty"`
	CustomerID      *int64     `json:"customerId,omitempty"`
	StartDate       *time.Time `json:"startDate,omitempty"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	IncludeArchived bool       `json:"includeArchived,omitempty"`
	Limit           int        `json:"limit,omitempty"`
	Offset          int        `json:"offset,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		CustomerID:      r.CustomerID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeArchived: r.IncludeArchived,
		Limit:           r.Limit,
		Offset:          r.Offset,
	}

	if r.Status != nil {
		status, err := domain.ParseStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// AppointmentResponse ответ с данными записи на обслуживание
type AppointmentResponse struct {
	ID            int64   `json:"id"`
	CustomerID    int64   `json:"customerId"`
	VehicleID     int64   `json:"vehicleId"`
	PreferredDate string  `json:"preferredDate"` // "2025-10-15"
	PreferredTime string  `json:"preferredTime"` // "10:00"
	Status        string  `json:"status"`
	ProgressStep  int     `json:"progressStep"`
	StageLabel    string  `json:"stageLabel"`
	Notes         *string `json:"notes,omitempty"`

	Services []string `json:"services,omitempty"`

	VehicleModel *string `json:"vehicleModel,omitempty"`
	LicensePlate *string `json:"licensePlate,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// ProgressResponse ответ трекера прогресса обслуживания
type ProgressResponse struct {
	AppointmentID int64   `json:"appointmentId"`
	Status        string  `json:"status"`
	ProgressStep  int     `json:"progress"`
	StageLabel    string  `json:"stageLabel"`
	VehicleModel  *string `json:"vehicle,omitempty"`
	LicensePlate  *string `json:"licensePlate,omitempty"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:            a.ID,
		CustomerID:    a.CustomerID,
		VehicleID:     a.VehicleID,
		PreferredDate: a.PreferredDate.Format(domain.DateFormat),
		PreferredTime: a.PreferredTime.String(),
		Status:        string(a.Status),
		ProgressStep:  a.ProgressStep,
		StageLabel:    domain.StageLabel(a.ProgressStep),
		Notes:         a.Notes,
		Services:      a.Services,
		VehicleModel:  a.VehicleModel,
		LicensePlate:  a.LicensePlate,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, appt := range appointments {
		if apptResp := FromDomainAppointment(appt); apptResp != nil {
			resp.Appointments = append(resp.Appointments, *apptResp)
		}
	}

	return resp
}

// ProgressFromDomain строит ответ трекера прогресса
func ProgressFromDomain(a *domain.Appointment) *ProgressResponse {
	if a == nil {
		return nil
	}

	return &ProgressResponse{
		AppointmentID: a.ID,
		Status:        string(a.Status),
		ProgressStep:  a.ProgressStep,
		StageLabel:    domain.StageLabel(a.ProgressStep),
		VehicleModel:  a.VehicleModel,
		LicensePlate:  a.LicensePlate,
	}
}
