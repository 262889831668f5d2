package vehicles

import "errors"

var (
	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrAccessDenied возвращается, когда автомобиль принадлежит другому клиенту
	ErrAccessDenied = errors.New("access denied")

	// ErrVehicleLimitReached возвращается при превышении лимита автомобилей в гараже
	ErrVehicleLimitReached = errors.New("vehicle limit reached")

	// ErrDuplicatePlate возвращается, когда номерной знак уже зарегистрирован
	ErrDuplicatePlate = errors.New("license plate already registered")

	// ErrVehicleHasActiveAppointment возвращается при удалении автомобиля
	// с незавершённой записью на обслуживание
	ErrVehicleHasActiveAppointment = errors.New("vehicle has an active appointment")

	// ErrInvalidInput возвращается при некорректных данных автомобиля
	ErrInvalidInput = errors.New("invalid vehicle data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
