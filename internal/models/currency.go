package models

import (
	"errors"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency - поддерживаемая валюта счёта
type Currency string

const (
	CurrencyUSDT Currency = "usdt"
	CurrencyRUB  Currency = "rub"
	CurrencyUZS  Currency = "uzs"
)

// Currencies - полный список валют в порядке отображения
var Currencies = []Currency{CurrencyUSDT, CurrencyRUB, CurrencyUZS}

// Суммы хранятся в NUMERIC(20, 8)
const (
	AmountScale = 8
)

// MaxAmount - суммы и балансы строго меньше 10^12
var MaxAmount = decimal.New(1, 12)

var (
	ErrUnknownCurrency  = errors.New("unknown currency")
	ErrFractionalAmount = errors.New("amount must be a whole number")
	ErrAmountPrecision  = errors.New("amount has more than 8 decimal places")
	ErrAmountTooLarge   = errors.New("amount is too large")
)

// ParseCurrency приводит строку к валюте, регистр и пробелы не учитываются
func ParseCurrency(s string) (Currency, error) {
	c := Currency(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(Currencies, c) {
		return c, nil
	}
	return "", ErrUnknownCurrency
}

// Integral - валюта хранится только в целых единицах
func (c Currency) Integral() bool {
	return c == CurrencyUZS
}

// CheckAmount проверяет, что сумма представима в валюте без округления.
// Знак не проверяется: изменения баланса администратором бывают отрицательными.
func (c Currency) CheckAmount(amount decimal.Decimal) error {
	if c.Integral() && !amount.IsInteger() {
		return ErrFractionalAmount
	}
	if !amount.Equal(amount.Truncate(AmountScale)) {
		return ErrAmountPrecision
	}
	if amount.Abs().GreaterThanOrEqual(MaxAmount) {
		return ErrAmountTooLarge
	}
	return nil
}

func (c Currency) String() string {
	return string(c)
}
