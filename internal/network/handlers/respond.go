package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/denmor86/tg-ledger/internal/helpers"
	"github.com/denmor86/tg-ledger/internal/logger"
	"github.com/denmor86/tg-ledger/internal/models"
	"github.com/denmor86/tg-ledger/internal/services"
	"github.com/denmor86/tg-ledger/internal/storage"
	"go.uber.org/zap"
)

// writeJSON - отправка ответа в формате JSON
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode JSON response:", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.ErrorResponse{Error: message})
}

// writeServiceError - перевод ошибок сервисов в коды HTTP
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidArgument):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrForbidden):
		writeError(w, http.StatusForbidden, "Not admin")
	case errors.Is(err, storage.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, storage.ErrRequestNotFound):
		writeError(w, http.StatusNotFound, "Request not found")
	case errors.Is(err, storage.ErrAlreadyProcessed):
		writeError(w, http.StatusBadRequest, "Already processed")
	case errors.Is(err, services.ErrInsufficientFundsNow):
		writeError(w, http.StatusBadRequest, "Insufficient funds now")
	case errors.Is(err, services.ErrInsufficientFunds):
		writeError(w, http.StatusBadRequest, "Insufficient funds")
	default:
		logger.Errorw("Service error", "request_id", helpers.GetRequestID(r.Context()), "error", err)
		writeError(w, http.StatusServiceUnavailable, "Service unavailable")
	}
}

// decodeBody - разбор JSON тела запроса
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.Error("Error to close body:", zap.Error(err))
		}
	}()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logger.Warn("Invalid request format:", zap.Error(err))
		writeError(w, http.StatusBadRequest, "Invalid request format")
		return false
	}
	return true
}

// toHistoryItems - перевод заявок в модель выдачи
func toHistoryItems(requests []models.RequestData, withUser bool) []models.HistoryItem {
	items := make([]models.HistoryItem, 0, len(requests))
	for _, req := range requests {
		item := models.HistoryItem{
			ID:        req.ID,
			Type:      req.Kind,
			Currency:  req.Currency,
			Amount:    req.Amount.InexactFloat64(),
			Status:    req.Status,
			CreatedAt: req.CreatedAt.UTC().Format(time.RFC3339Nano),
		}
		if withUser {
			item.UserID = req.UserID
		}
		items = append(items, item)
	}
	return items
}
