package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpsertUserRequest - модель регистрации пользователя, приходит от бота
type UpsertUserRequest struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
}

// Balances - балансы пользователя во всех валютах
type Balances struct {
	USDT decimal.Decimal
	RUB  decimal.Decimal
	UZS  decimal.Decimal
}

// Get возвращает баланс в указанной валюте
func (b Balances) Get(c Currency) decimal.Decimal {
	switch c {
	case CurrencyUSDT:
		return b.USDT
	case CurrencyRUB:
		return b.RUB
	case CurrencyUZS:
		return b.UZS
	}
	return decimal.Zero
}

// Add возвращает сумму балансов по каждой валюте
func (b Balances) Add(delta Balances) Balances {
	return Balances{
		USDT: b.USDT.Add(delta.USDT),
		RUB:  b.RUB.Add(delta.RUB),
		UZS:  b.UZS.Add(delta.UZS),
	}
}

// IsNegative - хотя бы один из балансов меньше нуля
func (b Balances) IsNegative() bool {
	return b.USDT.IsNegative() || b.RUB.IsNegative() || b.UZS.IsNegative()
}

// Response переводит балансы в модель ответа
func (b Balances) Response() BalanceResponse {
	return BalanceResponse{
		USDT: b.USDT.InexactFloat64(),
		RUB:  b.RUB.InexactFloat64(),
		UZS:  b.UZS.IntPart(),
	}
}

// BalanceResponse - модель ответа с балансами
type BalanceResponse struct {
	USDT float64 `json:"usdt"`
	RUB  float64 `json:"rub"`
	UZS  int64   `json:"uzs"`
}

// UserData - модель пользователя из хранилища
type UserData struct {
	UserID    int64
	Username  string
	Balances  Balances
	CreatedAt time.Time
}

// GrantRequest - начисление баланса администратором
type GrantRequest struct {
	AdminID int64           `json:"adminId"`
	UserID  int64           `json:"userId"`
	USDT    decimal.Decimal `json:"usdt"`
	RUB     decimal.Decimal `json:"rub"`
	UZS     decimal.Decimal `json:"uzs"`
}

// Deltas возвращает изменения балансов из запроса
func (r GrantRequest) Deltas() Balances {
	return Balances{USDT: r.USDT, RUB: r.RUB, UZS: r.UZS}
}
