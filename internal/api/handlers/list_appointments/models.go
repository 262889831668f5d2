package list_appointments

import (
	"net/url"
	"strconv"
	"time"

	"github.com/qb-auto/QB-AppointmentService/internal/domain"
	"github.com/qb-auto/QB-AppointmentService/internal/service/appointments/models"
)

// ParseQuery собирает запрос сервиса из query параметров
//
// Поддерживаемые параметры:
// - status: фильтр по статусу ("Pending", "In Progress", ...)
// - customerId: фильтр по клиенту
// - startDate, endDate: период по желаемой дате (YYYY-MM-DD)
// - includeArchived: включать архивные записи
// - limit, offset: пагинация
func ParseQuery(query url.Values) (*models.ListRequest, error) {
	req := &models.ListRequest{}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if rawCustomerID := query.Get("customerId"); rawCustomerID != "" {
		customerID, err := strconv.ParseInt(rawCustomerID, 10, 64)
		if err != nil {
			return nil, err
		}
		req.CustomerID = &customerID
	}

	if rawStart := query.Get("startDate"); rawStart != "" {
		startDate, err := time.Parse(domain.DateFormat, rawStart)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if rawEnd := query.Get("endDate"); rawEnd != "" {
		endDate, err := time.Parse(domain.DateFormat, rawEnd)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if rawArchived := query.Get("includeArchived"); rawArchived != "" {
		includeArchived, err := strconv.ParseBool(rawArchived)
		if err != nil {
			return nil, err
		}
		req.IncludeArchived = includeArchived
	}

	if rawLimit := query.Get("limit"); rawLimit != "" {
		limit, err := strconv.Atoi(rawLimit)
		if err != nil {
			return nil, err
		}
		req.Limit = limit
	}

	if rawOffset := query.Get("offset"); rawOffset != "" {
		offset, err := strconv.Atoi(rawOffset)
		if err != nil {
			return nil, err
		}
		req.Offset = offset
	}

	return req, nil
}
