package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/qb-auto/QB-AppointmentService/internal/api/handlers"
	"github.com/qb-auto/QB-AppointmentService/internal/domain"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	adminIDKey
)

const (
	headerUserID  = "X-User-ID"
	headerAdminID = "X-Admin-ID"

	msgMissingUserID  = "отсутствует заголовок X-User-ID"
	msgInvalidUserID  = "некорректный заголовок X-User-ID"
	msgMissingAdminID = "отсутствует заголовок X-Admin-ID"
	msgInvalidAdminID = "некорректный заголовок X-Admin-ID"
)

// Auth проверяет наличие X-User-ID и кладет ID клиента в контекст
// Аутентификация выполняется на API gateway, сервис доверяет заголовку
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(headerUserID)
		if raw == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgInvalidUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminAuth проверяет наличие X-Admin-ID и кладет ID администратора в контекст
func AdminAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(headerAdminID)
		if raw == "" {
			handlers.RespondUnauthorized(w, msgMissingAdminID)
			return
		}

		adminID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || adminID <= 0 {
			handlers.RespondUnauthorized(w, msgInvalidAdminID)
			return
		}

		ctx := context.WithValue(r.Context(), adminIDKey, adminID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID извлекает ID клиента из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// GetAdminID извлекает ID администратора из контекста
func GetAdminID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(adminIDKey).(int64)
	return id, ok
}

// GetPrincipal собирает субъекта запроса из контекста
// Администратор имеет приоритет, если запрос прошел оба middleware
func GetPrincipal(ctx context.Context) (domain.Principal, bool) {
	if adminID, ok := GetAdminID(ctx); ok {
		return domain.Principal{ID: adminID, Role: domain.RoleAdmin}, true
	}
	if userID, ok := GetUserID(ctx); ok {
		return domain.Principal{ID: userID, Role: domain.RoleCustomer}, true
	}
	return domain.Principal{}, false
}
