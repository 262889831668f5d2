package reschedule_appointment

import "errors"

var (
	// ErrMissingField возвращается, когда не заполнено обязательное поле
	ErrMissingField = errors.New("reschedule_appointment: required field is missing")

	// ErrDateNotInFuture возвращается, когда новая дата не позже сегодняшней
	ErrDateNotInFuture = errors.New("reschedule_appointment: date must be tomorrow or later")

	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("reschedule_appointment: appointment not found")

	// ErrAccessDenied возвращается, когда запись принадлежит другому клиенту
	ErrAccessDenied = errors.New("reschedule_appointment: access denied")

	// ErrTerminalState возвращается при попытке перенести завершенную запись
	ErrTerminalState = errors.New("reschedule_appointment: completed appointment cannot be rescheduled")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_appointment: internal error")
)
