package add_vehicle

import (
	"errors"
	"net/http"

	"github.com/qb-auto/QB-AppointmentService/internal/api/handlers"
	"github.com/qb-auto/QB-AppointmentService/internal/api/middleware"
	"github.com/qb-auto/QB-AppointmentService/internal/service/vehicles"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidVehicle     = "некорректные данные автомобиля"
	msgVehicleLimit       = "превышен лимит автомобилей в гараже"
	msgDuplicatePlate     = "автомобиль с таким номерным знаком уже зарегистрирован"
)

type Handler struct {
	service VehicleService
	logger  Logger
}

func NewHandler(service VehicleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/me/vehicles
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /me/vehicles - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req AddVehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /me/vehicles - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Add(r.Context(), req.ToServiceRequest(customerID))
	if err != nil {
		switch {
		case errors.Is(err, vehicles.ErrInvalidInput):
			h.logger.Warn("POST /me/vehicles - Invalid vehicle data: customer_id=%d, error=%v", customerID, err)
			handlers.RespondBadRequest(w, msgInvalidVehicle)

		case errors.Is(err, vehicles.ErrVehicleLimitReached):
			h.logger.Warn("POST /me/vehicles - Vehicle limit reached: customer_id=%d", customerID)
			handlers.RespondConflict(w, msgVehicleLimit)

		case errors.Is(err, vehicles.ErrDuplicatePlate):
			h.logger.Warn("POST /me/vehicles - Duplicate plate: customer_id=%d", customerID)
			handlers.RespondConflict(w, msgDuplicatePlate)

		default:
			h.logger.Error("POST /me/vehicles - Failed to add vehicle: customer_id=%d, error=%v",
				customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /me/vehicles - Vehicle added successfully: vehicle_id=%d, customer_id=%d",
		result.ID, customerID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
