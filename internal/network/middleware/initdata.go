package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/denmor86/tg-ledger/internal/helpers"
	"github.com/denmor86/tg-ledger/internal/logger"
	"github.com/denmor86/tg-ledger/internal/models"
	initdata "github.com/telegram-mini-apps/init-data-golang"
)

const InitDataHeader = "X-Telegram-Init-Data"

// InitData - проверяет подпись init-data Telegram Mini App и кладёт id пользователя в контекст.
// init-data ищется в заголовке X-Telegram-Init-Data, затем в параметре init_data.
// expIn == 0 отключает проверку срока действия.
func InitData(token string, expIn time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(InitDataHeader)
			if raw == "" {
				raw = r.URL.Query().Get("init_data")
			}
			if raw == "" {
				reject(w, http.StatusForbidden, "missing init data")
				return
			}

			if err := initdata.Validate(raw, token, expIn); err != nil {
				logger.Warn("Invalid init data:", err)
				reject(w, http.StatusForbidden, "invalid init data")
				return
			}

			parsed, err := initdata.Parse(raw)
			if err != nil {
				reject(w, http.StatusBadRequest, "invalid init data format")
				return
			}
			if parsed.User.ID == 0 {
				reject(w, http.StatusForbidden, "init data has no user")
				return
			}

			next.ServeHTTP(w, r.WithContext(helpers.WithTelegramUser(r.Context(), parsed.User.ID)))
		})
	}
}

func reject(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(models.ErrorResponse{Error: message}); err != nil {
		logger.Error("Failed to encode JSON response:", err)
	}
}
