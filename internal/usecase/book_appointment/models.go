package book_appointment

import (
	"time"

	"github.com/qb-auto/QB-AppointmentService/pkg/types"
)

// Request модель запроса на создание записи на обслуживание
type Request struct {
	CustomerID int64            // ID клиента (из auth-слоя)
	Phone      string           // Телефон, введенный в форме (сверяется с аккаунтом)
	Plate      string           // Номерной знак (свободный ввод)
	Model      string           // Модель автомобиля
	Date       time.Time        // Желаемая дата (без времени)
	Time       types.TimeString // Желаемое время (например, "10:00")
	Notes      *string          // Дополнительные заметки (опционально)
	Services   []string         // Названия услуг (минимум одна)
}

// Response модель ответа с созданной записью
type Response struct {
	ID            int64            // ID созданной записи
	CustomerID    int64            // ID клиента
	VehicleID     int64            // ID автомобиля (нового или существующего)
	PreferredDate time.Time        // Дата записи
	PreferredTime types.TimeString // Время записи
	Status        string           // Статус (всегда Pending после бронирования)
	ProgressStep  int              // Шаг прогресса (всегда 0)
	Notes         *string          // Заметки
	Services      []string         // Принятые услуги

	VehicleCreated bool // Был ли автомобиль зарегистрирован этой бронью

	CreatedAt time.Time
	UpdatedAt time.Time
}
