// Package middleware содержит HTTP middleware: аутентификацию по заголовкам
// гейтвея и сбор метрик запросов
package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/fabworks/FabLab-BookingService/internal/api/handlers"
)

const (
	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"

	// RoleAdmin роль администратора лаборатории
	RoleAdmin = "admin"
)

type contextKey string

const (
	userIDKey   contextKey = "userID"
	userRoleKey contextKey = "userRole"
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth извлекает идентификатор и роль пользователя из заголовков гейтвея
// и кладет их в контекст запроса. Запросы без X-User-ID отклоняются
func Auth(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rawID := r.Header.Get(headerUserID)
			if rawID == "" {
				logger.Warn("%s %s - missing %s header", r.Method, r.URL.Path, headerUserID)
				handlers.RespondUnauthorized(w, "требуется аутентификация")
				return
			}

			userID, err := strconv.ParseInt(rawID, 10, 64)
			if err != nil || userID <= 0 {
				logger.Warn("%s %s - invalid %s header: %q", r.Method, r.URL.Path, headerUserID, rawID)
				handlers.RespondUnauthorized(w, "требуется аутентификация")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			ctx = context.WithValue(ctx, userRoleKey, r.Header.Get(headerUserRole))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin пропускает только пользователей с ролью admin
// Должен стоять после Auth
func RequireAdmin(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if UserRoleFromContext(r.Context()) != RoleAdmin {
				logger.Warn("%s %s - admin role required", r.Method, r.URL.Path)
				handlers.RespondForbidden(w, "требуются права администратора")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// UserIDFromContext возвращает ID пользователя из контекста запроса
// Возвращает 0, если Auth middleware не отработал
func UserIDFromContext(ctx context.Context) int64 {
	id, _ := ctx.Value(userIDKey).(int64)
	return id
}

// UserRoleFromContext возвращает роль пользователя из контекста запроса
func UserRoleFromContext(ctx context.Context) string {
	role, _ := ctx.Value(userRoleKey).(string)
	return role
}
