package domain

import (
	"strings"
	"time"
)

// Vehicle represents a customer's vehicle
// License plates are globally unique across all customers
type Vehicle struct {
	ID           int64
	CustomerID   int64
	LicensePlate string
	Model        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizePlate приводит номерной знак к каноническому виду:
// верхний регистр, без окаймляющих пробелов
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}

// OwnedBy returns true if the vehicle belongs to the given customer
func (v *Vehicle) OwnedBy(customerID int64) bool {
	return v.CustomerID == customerID
}
