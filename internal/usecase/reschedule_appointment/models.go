package reschedule_appointment

import (
	"time"

	"github.com/qb-auto/QB-AppointmentService/pkg/types"
)

// Request модель запроса на перенос записи
type Request struct {
	AppointmentID int64            // ID переносимой записи
	CustomerID    int64            // ID клиента (из auth-слоя)
	Date          time.Time        // Новая дата
	Time          types.TimeString // Новое время
	Notes         *string          // Новые заметки (полностью заменяют старые)
	Services      []string         // Новый набор услуг (полностью заменяет старый)
}

// Response модель ответа с перенесенной записью
type Response struct {
	ID            int64
	CustomerID    int64
	VehicleID     int64
	PreferredDate time.Time
	PreferredTime types.TimeString
	Status        string   // Всегда Pending - перенос перезапускает процесс
	ProgressStep  int      // Всегда 0
	Services      []string // Принятые услуги
}
