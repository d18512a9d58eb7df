package handlers

import (
	"net/http"

	"github.com/denmor86/tg-ledger/internal/helpers"
	"github.com/denmor86/tg-ledger/internal/logger"
	"github.com/denmor86/tg-ledger/internal/models"
	"github.com/denmor86/tg-ledger/internal/services"
	"github.com/go-chi/chi/v5"
)

// UpsertUserHandler - регистрация пользователя при первом обращении к боту
func UpsertUserHandler(l services.LedgerService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.UpsertUserRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.UserID == 0 {
			writeError(w, http.StatusBadRequest, "userId is required")
			return
		}

		if err := l.UpsertUser(r.Context(), req.UserID, req.Username); err != nil {
			writeServiceError(w, r, err)
			return
		}
		logger.Info("User upserted", req.UserID)
		writeJSON(w, http.StatusOK, models.StatusResponse{Status: "ok"})
	})
}

// GetBalanceHandler - балансы пользователя во всех валютах
func GetBalanceHandler(l services.LedgerService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := helpers.ParseID(chi.URLParam(r, "userId"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid user id")
			return
		}
		balances, err := l.GetBalances(r.Context(), userID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, balances.Response())
	})
}

// GetHistoryHandler - последние операции пользователя
func GetHistoryHandler(h services.HistoryService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := helpers.ParseID(chi.URLParam(r, "userId"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid user id")
			return
		}
		requests, err := h.HistoryFor(r.Context(), userID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, models.HistoryResponse{Items: toHistoryItems(requests, false)})
	})
}
