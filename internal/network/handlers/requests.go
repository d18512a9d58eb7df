package handlers

import (
	"net/http"

	"github.com/denmor86/tg-ledger/internal/models"
	"github.com/denmor86/tg-ledger/internal/services"
)

// CreateRequestHandler - заявка на пополнение или вывод средств
func CreateRequestHandler(s services.RequestsService, kind models.RequestKind) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateRequest
		if !decodeBody(w, r, &req) {
			return
		}

		id, err := s.CreateRequest(r.Context(), kind, req.UserID, req.Currency, req.Amount)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, models.CreateResponse{Status: models.StatusPending, ID: id})
	})
}
