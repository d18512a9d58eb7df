package models

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func TestParseCurrency(t *testing.T) {
	testCases := []struct {
		Input         string
		Expected      Currency
		ExpectedError error
	}{
		{Input: "usdt", Expected: CurrencyUSDT},
		{Input: " RUB ", Expected: CurrencyRUB},
		{Input: "Uzs", Expected: CurrencyUZS},
		{Input: "eur", ExpectedError: ErrUnknownCurrency},
		{Input: "", ExpectedError: ErrUnknownCurrency},
	}

	for _, tc := range testCases {
		t.Run(tc.Input, func(t *testing.T) {
			c, err := ParseCurrency(tc.Input)
			if err != tc.ExpectedError {
				t.Errorf("Expected error '%v', got '%v'", tc.ExpectedError, err)
			}
			if c != tc.Expected {
				t.Errorf("Expected currency '%v', got '%v'", tc.Expected, c)
			}
		})
	}
}

func TestCurrency_CheckAmount(t *testing.T) {
	testCases := []struct {
		Name          string
		Currency      Currency
		Amount        string
		ExpectedError error
	}{
		{Name: "usdt eight places", Currency: CurrencyUSDT, Amount: "0.12345678"},
		{Name: "usdt trailing zeros", Currency: CurrencyUSDT, Amount: "1.1000000000"},
		{Name: "usdt nine places", Currency: CurrencyUSDT, Amount: "0.123456789", ExpectedError: ErrAmountPrecision},
		{Name: "usdt below smallest unit", Currency: CurrencyUSDT, Amount: "0.000000001", ExpectedError: ErrAmountPrecision},
		{Name: "rub too large", Currency: CurrencyRUB, Amount: "10000000000000", ExpectedError: ErrAmountTooLarge},
		{Name: "rub just below limit", Currency: CurrencyRUB, Amount: "999999999999.99999999"},
		{Name: "negative too large", Currency: CurrencyUSDT, Amount: "-1000000000000", ExpectedError: ErrAmountTooLarge},
		{Name: "uzs fractional", Currency: CurrencyUZS, Amount: "0.5", ExpectedError: ErrFractionalAmount},
		{Name: "uzs too large", Currency: CurrencyUZS, Amount: "1000000000000", ExpectedError: ErrAmountTooLarge},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			err := tc.Currency.CheckAmount(decimal.RequireFromString(tc.Amount))
			if err != tc.ExpectedError {
				t.Errorf("Expected error '%v', got '%v'", tc.ExpectedError, err)
			}
		})
	}

	for _, c := range Currencies {
		if err := c.CheckAmount(decimal.Zero); err != nil {
			t.Errorf("Expected zero %s amount to pass, got '%v'", c, err)
		}
	}

	if err := CurrencyUZS.CheckAmount(decimal.NewFromInt(1000)); err != nil {
		t.Errorf("Expected whole uzs amount to pass, got '%v'", err)
	}
	if err := CurrencyUZS.CheckAmount(decimal.RequireFromString("10.5")); err != ErrFractionalAmount {
		t.Errorf("Expected ErrFractionalAmount, got '%v'", err)
	}
	if err := CurrencyUSDT.CheckAmount(decimal.RequireFromString("0.00000001")); err != nil {
		t.Errorf("Expected fractional usdt amount to pass, got '%v'", err)
	}
	if err := CurrencyRUB.CheckAmount(decimal.RequireFromString("99.99")); err != nil {
		t.Errorf("Expected fractional rub amount to pass, got '%v'", err)
	}
}

func TestBalances(t *testing.T) {
	b := Balances{
		USDT: decimal.NewFromInt(10),
		RUB:  decimal.RequireFromString("2.5"),
		UZS:  decimal.NewFromInt(1000),
	}

	if !b.Get(CurrencyRUB).Equal(decimal.RequireFromString("2.5")) {
		t.Errorf("Expected rub 2.5, got '%v'", b.Get(CurrencyRUB))
	}

	sum := b.Add(Balances{USDT: decimal.NewFromInt(-3)})
	if !sum.USDT.Equal(decimal.NewFromInt(7)) || !sum.UZS.Equal(b.UZS) {
		t.Errorf("Unexpected sum: %+v", sum)
	}
	if sum.IsNegative() {
		t.Errorf("Expected non negative balances")
	}
	if !b.Add(Balances{UZS: decimal.NewFromInt(-1001)}).IsNegative() {
		t.Errorf("Expected negative uzs balance")
	}

	diff := cmp.Diff(BalanceResponse{USDT: 10, RUB: 2.5, UZS: 1000}, b.Response())
	if len(diff) != 0 {
		t.Errorf("balance response mismatch:\n %s", diff)
	}
}
