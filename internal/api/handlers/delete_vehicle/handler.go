package delete_vehicle

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
	msgInvalidVehicleID     = "некорректный ID автомобиля"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgNotFound             = "автомобиль не найден"
	msgForbidden            = "доступ запрещен"
	msgHasActiveAppointment = "нельзя удалить автомобиль с активной записью на обслуживание"
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

// Handle DELETE /api/v1/me/vehicles/{vehicleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vehicleIDStr := vars["vehicleId"]

	vehicleID, err := strconv.ParseInt(vehicleIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /me/vehicles/{id} - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	customerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /me/vehicles/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Delete(r.Context(), vehicleID, customerID); err != nil {
		switch {
		case errors.Is(err, vehicles.ErrVehicleNotFound):
			h.logger.Warn("DELETE /me/vehicles/{id} - Vehicle not found: vehicle_id=%d", vehicleID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, vehicles.ErrAccessDenied):
			h.logger.Warn("DELETE /me/vehicles/{id} - Access denied: vehicle_id=%d, customer_id=%d",
				vehicleID, customerID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, vehicles.ErrVehicleHasActiveAppointment):
			h.logger.Warn("DELETE /me/vehicles/{id} - Vehicle has active appointment: vehicle_id=%d", vehicleID)
			handlers.RespondConflict(w, msgHasActiveAppointment)

		default:
			h.logger.Error("DELETE /me/vehicles/{id} - Failed to delete vehicle: vehicle_id=%d, error=%v",
				vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /me/vehicles/{id} - Vehicle deleted successfully: vehicle_id=%d, customer_id=%d",
		vehicleID, customerID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
