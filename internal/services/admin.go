package services

import (
	"context"

	"github.com/denmor86/tg-ledger/internal/logger"
	"github.com/denmor86/tg-ledger/internal/models"
)

// AdminGate - проверка единственного администратора
type AdminGate struct {
	AdminID int64
}

func NewAdminGate(adminID int64) AdminGate {
	return AdminGate{AdminID: adminID}
}

// Authorize - вызывающий должен совпадать с настроенным администратором.
// Если администратор не задан, привилегированные операции запрещены всем.
func (g AdminGate) Authorize(callerID int64) error {
	if g.AdminID == 0 || callerID != g.AdminID {
		logger.Warn("Forbidden admin operation for", callerID)
		return ErrForbidden
	}
	return nil
}

type AdminService interface {
	GrantBalance(ctx context.Context, callerID int64, userID int64, deltas models.Balances) error
	Pending(ctx context.Context, callerID int64) ([]models.RequestData, error)
	Decide(ctx context.Context, callerID int64, kind string, requestID int64, action string) (models.RequestStatus, error)
}

type Admin struct {
	Gate     AdminGate
	Ledger   LedgerService
	Requests RequestsService
	History  HistoryService
}

// Создание сервиса
func NewAdmin(gate AdminGate, ledger LedgerService, requests RequestsService, history HistoryService) AdminService {
	return &Admin{Gate: gate, Ledger: ledger, Requests: requests, History: history}
}

func (s *Admin) GrantBalance(ctx context.Context, callerID int64, userID int64, deltas models.Balances) error {
	if err := s.Gate.Authorize(callerID); err != nil {
		return err
	}
	_, err := s.Ledger.GrantBalance(ctx, userID, deltas)
	return err
}

func (s *Admin) Pending(ctx context.Context, callerID int64) ([]models.RequestData, error) {
	if err := s.Gate.Authorize(callerID); err != nil {
		return nil, err
	}
	return s.History.PendingQueue(ctx)
}

func (s *Admin) Decide(ctx context.Context, callerID int64, kind string, requestID int64, action string) (models.RequestStatus, error) {
	if err := s.Gate.Authorize(callerID); err != nil {
		return "", err
	}
	return s.Requests.Decide(ctx, kind, requestID, action)
}
