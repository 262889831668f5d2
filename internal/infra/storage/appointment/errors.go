package appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись на обслуживание не найдена
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrInvalidStatus возвращается, когда в БД лежит нераспознанный статус
	ErrInvalidStatus = errors.New("appointment.repository: invalid appointment status")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
