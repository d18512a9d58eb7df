package handlers

import (
	"net/http"

	"github.com/denmor86/tg-ledger/internal/helpers"
	"github.com/denmor86/tg-ledger/internal/logger"
	"github.com/denmor86/tg-ledger/internal/models"
	"github.com/denmor86/tg-ledger/internal/services"
)

// callerID - идентификатор администратора из запроса. Если init-data проверена
// middleware, заявленный id должен совпадать с пользователем Telegram.
func callerID(r *http.Request, claimed int64) (int64, error) {
	if verified, ok := helpers.GetTelegramUserID(r.Context()); ok && verified != claimed {
		logger.Warn("Admin id does not match init data user", claimed, verified)
		return 0, services.ErrForbidden
	}
	return claimed, nil
}

// AddBalanceHandler - прямое изменение балансов администратором
func AddBalanceHandler(a services.AdminService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.GrantRequest
		if !decodeBody(w, r, &req) {
			return
		}
		caller, err := callerID(r, req.AdminID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		if err := a.GrantBalance(r.Context(), caller, req.UserID, req.Deltas()); err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, models.StatusResponse{Status: "ok"})
	})
}

// GetPendingHandler - очередь необработанных заявок
func GetPendingHandler(a services.AdminService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get("adminId")
		if raw == "" {
			raw = r.URL.Query().Get("admin_id")
		}
		claimed, err := helpers.ParseID(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid admin id")
			return
		}
		caller, err := callerID(r, claimed)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		requests, err := a.Pending(r.Context(), caller)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, models.HistoryResponse{Items: toHistoryItems(requests, true)})
	})
}

// DecisionHandler - одобрение или отклонение заявки
func DecisionHandler(a services.AdminService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.DecisionRequest
		if !decodeBody(w, r, &req) {
			return
		}
		caller, err := callerID(r, req.AdminID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		status, err := a.Decide(r.Context(), caller, req.RequestType, req.RequestID, req.Action)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, models.DecisionResponse{Status: status})
	})
}
