package domain

// Business constants
const (
	// MaxVehiclesPerCustomer максимальное число автомобилей на одного клиента
	MaxVehiclesPerCustomer = 5

	MaxNotesLength  = 500
	MaxReasonLength = 500
	MaxPlateLength  = 20
	MaxModelLength  = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы, при которых автомобиль считается занятым
// Используется проверкой "одна активная запись на автомобиль"
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusScheduled,
	StatusInProgress,
}

// AllStatuses полный список допустимых статусов
var AllStatuses = []AppointmentStatus{
	StatusPending,
	StatusScheduled,
	StatusInProgress,
	StatusCompleted,
	StatusPickedUp,
	StatusCancelled,
	StatusArchived,
}
