package services

import (
	"context"
	"errors"
	"time"

	"github.com/denmor86/tg-ledger/internal/logger"
	"github.com/denmor86/tg-ledger/internal/models"
	"github.com/denmor86/tg-ledger/internal/storage"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type RequestsService interface {
	CreateRequest(ctx context.Context, kind models.RequestKind, userID int64, currency string, amount decimal.Decimal) (int64, error)
	Decide(ctx context.Context, kind string, requestID int64, action string) (models.RequestStatus, error)
}

type Requests struct {
	Requests storage.RequestsStorage
	Users    storage.UsersStorage
	Now      func() time.Time
}

// Создание сервиса
func NewRequests(requests storage.RequestsStorage, users storage.UsersStorage) *Requests {
	return &Requests{
		Requests: requests,
		Users:    users,
		Now:      func() time.Time { return time.Now().UTC() },
	}
}

// CreateRequest создаёт заявку на пополнение или вывод в статусе pending.
// Для вывода проверяется текущий баланс, но средства не резервируются.
func (s *Requests) CreateRequest(ctx context.Context, kind models.RequestKind, userID int64, currency string, amount decimal.Decimal) (int64, error) {
	kind, err := models.ParseKind(string(kind))
	if err != nil {
		return 0, ErrInvalidKind
	}
	cur, err := models.ParseCurrency(currency)
	if err != nil {
		return 0, ErrInvalidCurrency
	}
	if !amount.IsPositive() {
		return 0, ErrInvalidAmount
	}
	if err := cur.CheckAmount(amount); err != nil {
		return 0, amountError(err)
	}

	user, err := s.Users.GetUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, storage.ErrUserNotFound) {
			logger.Error("Failed to get user", zap.Error(err))
		}
		return 0, err
	}

	if kind == models.KindWithdraw && user.Balances.Get(cur).LessThan(amount) {
		logger.Warn("Insufficient funds for withdraw request", userID, cur)
		return 0, ErrInsufficientFunds
	}

	id, err := s.Requests.AddRequest(ctx, models.RequestData{
		Kind:      kind,
		UserID:    userID,
		Currency:  cur,
		Amount:    amount,
		Status:    models.StatusPending,
		CreatedAt: s.Now(),
	})
	if err != nil {
		if !errors.Is(err, storage.ErrUserNotFound) {
			logger.Error("Failed to add request", zap.Error(err))
		}
		return 0, err
	}

	logger.Infow("Request created", "type", kind, "id", id, "user_id", userID, "currency", cur, "amount", amount.String())
	return id, nil
}

// Decide применяет решение администратора к заявке. Проверка статуса, изменение
// баланса и смена статуса выполняются хранилищем атомарно.
func (s *Requests) Decide(ctx context.Context, kind string, requestID int64, action string) (models.RequestStatus, error) {
	k, err := models.ParseKind(kind)
	if err != nil {
		return "", ErrInvalidKind
	}
	a, err := models.ParseAction(action)
	if err != nil {
		return "", ErrInvalidAction
	}

	decision := models.Decision{Kind: k, ID: requestID, Action: a}
	decided, err := s.Requests.DecideRequest(ctx, decision, s.Now())
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInsufficientFunds):
			// заявка остаётся pending, администратор может повторить позже
			logger.Warn("Insufficient funds to approve withdraw", requestID)
			return "", ErrInsufficientFundsNow
		case errors.Is(err, storage.ErrRequestNotFound),
			errors.Is(err, storage.ErrAlreadyProcessed),
			errors.Is(err, storage.ErrUserNotFound):
			return "", err
		}
		logger.Error("Failed to decide request", zap.Error(err))
		return "", err
	}

	logger.Infow("Request decided", "type", k, "id", requestID, "status", decided.Status)
	return decided.Status, nil
}
