package helpers

import (
	"context"
	"strconv"
)

type contextKey string

const (
	telegramUserKey contextKey = "telegram_user_id"
	requestIDKey    contextKey = "request_id"
)

// WithTelegramUser - сохраняет в контексте id пользователя из проверенной init-data
func WithTelegramUser(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, telegramUserKey, userID)
}

// GetTelegramUserID - извлекает проверенный id пользователя Telegram из контекста
func GetTelegramUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(telegramUserKey).(int64)
	return userID, ok
}

// WithRequestID - сохраняет идентификатор HTTP запроса
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// GetRequestID - идентификатор текущего HTTP запроса, пустой если не задан
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// ParseID - разбор числового идентификатора из пути или строки запроса
func ParseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}
