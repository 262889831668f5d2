package domain

import "time"

// AppointmentsFilter фильтр для выборки записей в панели администратора
type AppointmentsFilter struct {
	CustomerID      *int64             // Фильтр по клиенту (опционально)
	VehicleID       *int64             // Фильтр по автомобилю (опционально)
	Status          *AppointmentStatus // Фильтр по статусу (опционально)
	StartDate       *time.Time         // Начало периода по preferred_date (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	IncludeArchived bool               // Включать ли архивные записи
	Limit           int                // 0 = без ограничения
	Offset          int
}
