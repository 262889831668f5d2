package update_vehicle

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/qb-auto/QB-AppointmentService/internal/api/handlers"
	"github.com/qb-auto/QB-AppointmentService/internal/api/middleware"
	"github.com/qb-auto/QB-AppointmentService/internal/service/vehicles"
)

const (
	msgInvalidVehicleID   = "некорректный ID автомобиля"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidVehicle     = "некорректные данные автомобиля"
	msgNotFound           = "автомобиль не найден"
	msgForbidden          = "доступ запрещен"
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

// Handle PUT /api/v1/me/vehicles/{vehicleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vehicleIDStr := vars["vehicleId"]

	vehicleID, err := strconv.ParseInt(vehicleIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /me/vehicles/{id} - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	customerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /me/vehicles/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateVehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /me/vehicles/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), vehicleID, req.ToServiceRequest(customerID))
	if err != nil {
		switch {
		case errors.Is(err, vehicles.ErrInvalidInput):
			h.logger.Warn("PUT /me/vehicles/{id} - Invalid vehicle data: vehicle_id=%d, error=%v", vehicleID, err)
			handlers.RespondBadRequest(w, msgInvalidVehicle)

		case errors.Is(err, vehicles.ErrVehicleNotFound):
			h.logger.Warn("PUT /me/vehicles/{id} - Vehicle not found: vehicle_id=%d", vehicleID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, vehicles.ErrAccessDenied):
			h.logger.Warn("PUT /me/vehicles/{id} - Access denied: vehicle_id=%d, customer_id=%d",
				vehicleID, customerID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, vehicles.ErrDuplicatePlate):
			h.logger.Warn("PUT /me/vehicles/{id} - Duplicate plate: vehicle_id=%d", vehicleID)
			handlers.RespondConflict(w, msgDuplicatePlate)

		default:
			h.logger.Error("PUT /me/vehicles/{id} - Failed to update vehicle: vehicle_id=%d, error=%v",
				vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /me/vehicles/{id} - Vehicle updated successfully: vehicle_id=%d, customer_id=%d",
		vehicleID, customerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
