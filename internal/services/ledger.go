package services

import (
	"context"
	"errors"

	"github.com/denmor86/tg-ledger/internal/logger"
	"github.com/denmor86/tg-ledger/internal/models"
	"github.com/denmor86/tg-ledger/internal/storage"
	"go.uber.org/zap"
)

type LedgerService interface {
	UpsertUser(ctx context.Context, userID int64, username string) error
	GetBalances(ctx context.Context, userID int64) (*models.Balances, error)
	GrantBalance(ctx context.Context, userID int64, deltas models.Balances) (*models.Balances, error)
}

type Ledger struct {
	Users storage.UsersStorage
}

// Создание сервиса
func NewLedger(users storage.UsersStorage) LedgerService {
	return &Ledger{Users: users}
}

// UpsertUser регистрирует пользователя при первом обращении, повторный вызов обновляет имя
func (s *Ledger) UpsertUser(ctx context.Context, userID int64, username string) error {
	if err := s.Users.UpsertUser(ctx, userID, username); err != nil {
		logger.Error("Failed to upsert user", zap.Int64("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}

// GetBalances возвращает балансы пользователя во всех валютах
func (s *Ledger) GetBalances(ctx context.Context, userID int64) (*models.Balances, error) {
	balances, err := s.Users.GetBalances(ctx, userID)
	if err != nil {
		if !errors.Is(err, storage.ErrUserNotFound) {
			logger.Error("Failed to get user balances", zap.Error(err))
		}
		return nil, err
	}
	return balances, nil
}

// GrantBalance прямое изменение балансов администратором.
// Допускаются изменения с любым знаком, итоговый баланс не может быть отрицательным.
func (s *Ledger) GrantBalance(ctx context.Context, userID int64, deltas models.Balances) (*models.Balances, error) {
	for _, c := range models.Currencies {
		if err := c.CheckAmount(deltas.Get(c)); err != nil {
			return nil, amountError(err)
		}
	}

	balances, err := s.Users.GrantBalance(ctx, userID, deltas)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInsufficientFunds):
			return nil, ErrInsufficientFunds
		case errors.Is(err, storage.ErrUserNotFound):
			return nil, err
		}
		logger.Error("Failed to grant balance", zap.Error(err))
		return nil, err
	}
	logger.Infow("Balance granted", "user_id", userID,
		"usdt", deltas.USDT.String(), "rub", deltas.RUB.String(), "uzs", deltas.UZS.String())
	return balances, nil
}
