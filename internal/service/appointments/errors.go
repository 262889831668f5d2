package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrAccessDenied возвращается, когда у субъекта нет прав на запись
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	// (например, approve записи, которая уже не Pending)
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrStepOutOfRange возвращается, когда шаг прогресса вне диапазона 0..7
	ErrStepOutOfRange = errors.New("progress step out of range")

	// ErrTerminalState возвращается при попытке отменить завершенную запись
	ErrTerminalState = errors.New("completed appointment cannot be modified")

	// ErrInvalidStatus возвращается при нераспознанном статусе в фильтре
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
