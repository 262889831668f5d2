package customers

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrEmailTaken возвращается, когда email уже занят другим клиентом
	ErrEmailTaken = errors.New("email already taken")

	// ErrPhoneTaken возвращается, когда телефон уже занят другим клиентом
	ErrPhoneTaken = errors.New("phone already taken")

	// ErrInvalidInput возвращается при некорректных данных профиля
	ErrInvalidInput = errors.New("invalid profile data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
