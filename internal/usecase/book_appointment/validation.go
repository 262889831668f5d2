package book_appointment

import (
	"fmt"
	"strings"
	"time"
)

// validateRequest проверяет полноту входных данных запроса
// Каждая проверка обрывает валидацию с конкретной ошибкой
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrMissingField)
	}

	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrMissingField)
	}

	if strings.TrimSpace(req.Plate) == "" {
		return fmt.Errorf("%w: license plate is required", ErrMissingField)
	}

	if strings.TrimSpace(req.Model) == "" {
		return fmt.Errorf("%w: vehicle model is required", ErrMissingField)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrMissingField)
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrMissingField)
	}

	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrMissingField, err)
	}

	if len(cleanServices(req.Services)) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrMissingField)
	}

	return nil
}

// validateDateInFuture проверяет, что дата строго позже сегодняшней
// Запись "на сегодня" не допускается - самое раннее завтра
func validateDateInFuture(date, now time.Time) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	todayOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if !dateOnly.After(todayOnly) {
		return ErrDateNotInFuture
	}

	return nil
}

// cleanServices убирает пустые названия и дубликаты, сохраняя порядок
func cleanServices(services []string) []string {
	seen := make(map[string]struct{}, len(services))
	cleaned := make([]string, 0, len(services))

	for _, s := range services {
		name := strings.TrimSpace(s)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		cleaned = append(cleaned, name)
	}

	return cleaned
}
