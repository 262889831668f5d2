package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/qb-auto/QB-AppointmentService/pkg/types"
)

// AppointmentStatus represents the workshop status of an appointment
// The string values match the legacy database literals exactly
type AppointmentStatus string

const (
	StatusPending    AppointmentStatus = "Pending"
	StatusScheduled  AppointmentStatus = "Scheduled"
	StatusInProgress AppointmentStatus = "In Progress"
	StatusCompleted  AppointmentStatus = "Completed"
	StatusPickedUp   AppointmentStatus = "Picked Up"
	StatusCancelled  AppointmentStatus = "Cancelled"
	StatusArchived   AppointmentStatus = "Archived"
)

var (
	// ErrUnknownStatus возвращается при попытке распарсить нераспознанный статус
	ErrUnknownStatus = errors.New("domain: unknown appointment status")
)

// ParseStatus канонический парсер статуса на границе репозитория
// Нормализует регистр и пробелы; нераспознанные значения отклоняются,
// пустая строка трактуется как Pending (легаси-записи без статуса)
func ParseStatus(s string) (AppointmentStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pending":
		return StatusPending, nil
	case "scheduled":
		return StatusScheduled, nil
	case "in progress":
		return StatusInProgress, nil
	case "completed":
		return StatusCompleted, nil
	case "picked up":
		return StatusPickedUp, nil
	case "cancelled":
		return StatusCancelled, nil
	case "archived":
		return StatusArchived, nil
	default:
		return "", ErrUnknownStatus
	}
}

// Appointment represents a vehicle service appointment
type Appointment struct {
	ID            int64
	CustomerID    int64
	VehicleID     int64
	PreferredDate time.Time
	PreferredTime types.TimeString
	Status        AppointmentStatus
	ProgressStep  int
	Notes         *string

	// Названия заказанных услуг (appointment_services)
	Services []string

	// Denormalized vehicle data for list views
	VehicleModel *string
	LicensePlate *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment occupies its vehicle
// (blocks another booking for the same vehicle)
func (a *Appointment) IsActive() bool {
	switch a.Status {
	case StatusPending, StatusScheduled, StatusInProgress:
		return true
	default:
		return false
	}
}

// CanBeCancelled returns true if the customer may still cancel
// Only Completed is terminal for customer-initiated edits
func (a *Appointment) CanBeCancelled() bool {
	return a.Status != StatusCompleted
}

// CanBeRescheduled returns true if the customer may still reschedule
func (a *Appointment) CanBeRescheduled() bool {
	return a.Status != StatusCompleted
}

// CanBeApproved returns true if an admin may approve (Pending -> Scheduled)
// Записи без статуса трактуются как Pending
func (a *Appointment) CanBeApproved() bool {
	return a.Status == StatusPending || a.Status == ""
}

// CanBeRejected returns true if an admin may reject (-> Cancelled)
func (a *Appointment) CanBeRejected() bool {
	switch a.Status {
	case StatusCompleted, StatusCancelled, StatusPickedUp, StatusArchived:
		return false
	default:
		return true
	}
}

// CanBeCompleted returns true if an admin may mark the job Completed
func (a *Appointment) CanBeCompleted() bool {
	return a.Status == StatusScheduled || a.Status == StatusInProgress
}
