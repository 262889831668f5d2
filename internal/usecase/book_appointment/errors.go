package book_appointment

import "errors"

var (
	// ErrMissingField возвращается, когда не заполнено обязательное поле брони
	ErrMissingField = errors.New("book_appointment: required field is missing")

	// ErrDateNotInFuture возвращается, когда дата записи не позже сегодняшней
	// Записаться можно не раньше, чем на завтра
	ErrDateNotInFuture = errors.New("book_appointment: date must be tomorrow or later")

	// ErrPhoneMismatch возвращается, когда телефон не совпадает с номером аккаунта
	ErrPhoneMismatch = errors.New("book_appointment: phone does not match registered account number")

	// ErrPlateOwnedByOther возвращается, когда номерной знак зарегистрирован
	// на другого клиента
	ErrPlateOwnedByOther = errors.New("book_appointment: vehicle is registered to another customer")

	// ErrActiveAppointmentExists возвращается, когда у автомобиля уже есть
	// активная запись (Pending, Scheduled или In Progress)
	ErrActiveAppointmentExists = errors.New("book_appointment: vehicle already has an active appointment")

	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("book_appointment: customer not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_appointment: internal error")
)
