package update_profile

import (
	"errors"
	"net/http"

	"github.com/qb-auto/QB-AppointmentService/internal/api/handlers"
	"github.com/qb-auto/QB-AppointmentService/internal/api/middleware"
	"github.com/qb-auto/QB-AppointmentService/internal/service/customers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidProfile     = "некорректные данные профиля"
	msgNotFound           = "клиент не найден"
	msgEmailTaken         = "email уже используется другим клиентом"
	msgPhoneTaken         = "телефон уже используется другим клиентом"
)

type Handler struct {
	service CustomerService
	logger  Logger
}

func NewHandler(service CustomerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/me/profile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /me/profile - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateProfileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /me/profile - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateProfile(r.Context(), req.ToServiceRequest(customerID))
	if err != nil {
		switch {
		case errors.Is(err, customers.ErrInvalidInput):
			h.logger.Warn("PUT /me/profile - Invalid profile data: customer_id=%d, error=%v", customerID, err)
			handlers.RespondBadRequest(w, msgInvalidProfile)

		case errors.Is(err, customers.ErrCustomerNotFound):
			h.logger.Warn("PUT /me/profile - Customer not found: customer_id=%d", customerID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, customers.ErrEmailTaken):
			h.logger.Warn("PUT /me/profile - Email taken: customer_id=%d", customerID)
			handlers.RespondConflict(w, msgEmailTaken)

		case errors.Is(err, customers.ErrPhoneTaken):
			h.logger.Warn("PUT /me/profile - Phone taken: customer_id=%d", customerID)
			handlers.RespondConflict(w, msgPhoneTaken)

		default:
			h.logger.Error("PUT /me/profile - Failed to update profile: customer_id=%d, error=%v",
				customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /me/profile - Profile updated successfully: customer_id=%d", customerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
