package book_appointment

import (
	"errors"
	"net/http"

	"github.com/qb-auto/QB-AppointmentService/internal/api/handlers"
	"github.com/qb-auto/QB-AppointmentService/internal/api/middleware"
	bookAppointment "github.com/qb-auto/QB-AppointmentService/internal/usecase/book_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgMissingField       = "не заполнено обязательное поле"
	msgDateNotInFuture    = "дата записи должна быть не раньше завтрашнего дня"
	msgPhoneMismatch      = "телефон не совпадает с номером, указанным в аккаунте"
	msgPlateOwnedByOther  = "автомобиль зарегистрирован на другого клиента"
	msgActiveExists       = "у автомобиля уже есть активная запись"
	msgCustomerNotFound   = "клиент не найден"
)

type Handler struct {
	useCase BookAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase BookAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	customerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req BookAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(customerID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookAppointment.ErrMissingField):
			h.logger.Warn("POST /appointments - Missing field: customer_id=%d, error=%v", customerID, err)
			handlers.RespondBadRequest(w, msgMissingField)

		case errors.Is(err, bookAppointment.ErrDateNotInFuture):
			h.logger.Warn("POST /appointments - Date not in future: customer_id=%d", customerID)
			handlers.RespondBadRequest(w, msgDateNotInFuture)

		case errors.Is(err, bookAppointment.ErrPhoneMismatch):
			h.logger.Warn("POST /appointments - Phone mismatch: customer_id=%d", customerID)
			handlers.RespondBadRequest(w, msgPhoneMismatch)

		case errors.Is(err, bookAppointment.ErrPlateOwnedByOther):
			h.logger.Warn("POST /appointments - Plate owned by another customer: customer_id=%d", customerID)
			handlers.RespondError(w, http.StatusConflict, msgPlateOwnedByOther)

		case errors.Is(err, bookAppointment.ErrActiveAppointmentExists):
			h.logger.Warn("POST /appointments - Active appointment exists: customer_id=%d", customerID)
			handlers.RespondError(w, http.StatusConflict, msgActiveExists)

		case errors.Is(err, bookAppointment.ErrCustomerNotFound):
			h.logger.Warn("POST /appointments - Customer not found: customer_id=%d", customerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		default:
			h.logger.Error("POST /appointments - Failed to book appointment: customer_id=%d, error=%v",
				customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment booked successfully: appointment_id=%d, customer_id=%d, vehicle_id=%d, vehicle_created=%t",
		result.ID, customerID, result.VehicleID, result.VehicleCreated)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
