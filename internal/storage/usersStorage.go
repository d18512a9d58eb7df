package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/denmor86/tg-ledger/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const (
	UpsertUser = `INSERT INTO USERS (user_id, username) 
						VALUES ($1, $2) 
						ON CONFLICT (user_id) DO UPDATE SET username = EXCLUDED.username;`

	GetUser = `SELECT user_id, username, usdt, rub, uzs, created_at FROM USERS WHERE user_id=$1;`

	CheckUser = `SELECT EXISTS(SELECT 1 FROM USERS WHERE user_id=$1);`

	GrantUser = `UPDATE USERS 
						SET usdt = usdt + $1,
						    rub  = rub  + $2,
						    uzs  = uzs  + $3
						WHERE user_id = $4 AND usdt + $1 >= 0 AND rub + $2 >= 0 AND uzs + $3 >= 0
						RETURNING usdt, rub, uzs;`
)

// Изменение баланса в одной валюте. Строка обновляется только если
// итоговый баланс не отрицательный, поэтому проверка и запись атомарны.
var adjustBalanceQueries = map[models.Currency]string{
	models.CurrencyUSDT: `UPDATE USERS SET usdt = usdt + $1 
							WHERE user_id = $2 AND usdt + $1 >= 0 
							RETURNING usdt, rub, uzs;`,
	models.CurrencyRUB: `UPDATE USERS SET rub = rub + $1 
							WHERE user_id = $2 AND rub + $1 >= 0 
							RETURNING usdt, rub, uzs;`,
	models.CurrencyUZS: `UPDATE USERS SET uzs = uzs + $1 
							WHERE user_id = $2 AND uzs + $1 >= 0 
							RETURNING usdt, rub, uzs;`,
}

type UserDatabase struct {
	DB *Database
}

// Создание хранилища
func NewUsersStorage(db *Database) *UserDatabase {
	return &UserDatabase{DB: db}
}

// UpsertUser - создаёт пользователя с нулевыми балансами или обновляет имя
func (s *UserDatabase) UpsertUser(ctx context.Context, userID int64, username string) error {
	if _, err := s.DB.Pool.Exec(ctx, UpsertUser, userID, username); err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}

func (s *UserDatabase) GetUser(ctx context.Context, userID int64) (*models.UserData, error) {
	var (
		id        int64
		username  string
		usdt      decimal.Decimal
		rub       decimal.Decimal
		uzs       decimal.Decimal
		createdAt time.Time
	)
	err := s.DB.Pool.QueryRow(ctx, GetUser, userID).Scan(&id, &username, &usdt, &rub, &uzs, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &models.UserData{
		UserID:    id,
		Username:  username,
		Balances:  models.Balances{USDT: usdt, RUB: rub, UZS: uzs},
		CreatedAt: createdAt,
	}, nil
}

// GetBalances - Получение балансов пользователя
func (s *UserDatabase) GetBalances(ctx context.Context, userID int64) (*models.Balances, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &user.Balances, nil
}

// AdjustBalance - изменение баланса пользователя на delta (со знаком)
func (s *UserDatabase) AdjustBalance(ctx context.Context, userID int64, currency models.Currency, delta decimal.Decimal) (*models.Balances, error) {
	return s.adjustBalance(ctx, s.DB.Pool, userID, currency, delta)
}

func (s *UserDatabase) adjustBalance(ctx context.Context, q Querier, userID int64, currency models.Currency, delta decimal.Decimal) (*models.Balances, error) {
	query, ok := adjustBalanceQueries[currency]
	if !ok {
		return nil, fmt.Errorf("adjust balance: %w", models.ErrUnknownCurrency)
	}
	var b models.Balances
	err := q.QueryRow(ctx, query, delta, userID).Scan(&b.USDT, &b.RUB, &b.UZS)
	if err == nil {
		return &b, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to update balance: %w", err)
	}
	return nil, s.explainNoRows(ctx, q, userID)
}

// GrantBalance - изменение балансов администратором во всех валютах сразу
func (s *UserDatabase) GrantBalance(ctx context.Context, userID int64, deltas models.Balances) (*models.Balances, error) {
	var b models.Balances
	err := s.DB.Pool.QueryRow(ctx, GrantUser, deltas.USDT, deltas.RUB, deltas.UZS, userID).Scan(&b.USDT, &b.RUB, &b.UZS)
	if err == nil {
		return &b, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to grant balance: %w", err)
	}
	return nil, s.explainNoRows(ctx, s.DB.Pool, userID)
}

// Условное обновление не затронуло строк: либо нет пользователя, либо не хватает средств
func (s *UserDatabase) explainNoRows(ctx context.Context, q Querier, userID int64) error {
	var exist bool
	if err := q.QueryRow(ctx, CheckUser, userID).Scan(&exist); err != nil {
		return fmt.Errorf("failed to check user exists: %w", err)
	}
	if !exist {
		return ErrUserNotFound
	}
	return ErrInsufficientFunds
}
