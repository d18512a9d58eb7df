package handlers

import (
	"context"
	"net/http"

	"github.com/denmor86/tg-ledger/internal/logger"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler - проверка доступности сервиса и БД
func HealthHandler(p Pinger) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := p.Ping(r.Context()); err != nil {
			logger.Error("Database ping failed:", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]bool{"ok": false})
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
}
