package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/denmor86/tg-ledger/internal/config"
	"github.com/denmor86/tg-ledger/internal/logger"
	"github.com/denmor86/tg-ledger/internal/models"
	"github.com/denmor86/tg-ledger/internal/storage"
	"github.com/denmor86/tg-ledger/internal/storage/mocks"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestLedgerService_UpsertUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUsers := mocks.NewMockUsersStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	ledger := NewLedger(mockUsers)

	testCases := []struct {
		Name          string
		SetupMocks    func()
		ExpectedError error
	}{
		{
			Name: "Error. Failed upsert user #1",
			SetupMocks: func() {
				mockUsers.EXPECT().UpsertUser(gomock.Any(), int64(42), "alice").Return(errors.New("connection refused"))
			},
			ExpectedError: errors.New("connection refused"),
		},
		{
			Name: "Success. Upsert user #2",
			SetupMocks: func() {
				mockUsers.EXPECT().UpsertUser(gomock.Any(), int64(42), "alice").Return(nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			err := ledger.UpsertUser(ctx, 42, "alice")

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
			}
		})
	}
}

func TestLedgerService_GetBalances(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUsers := mocks.NewMockUsersStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	ledger := NewLedger(mockUsers)

	t.Run("Error. User not found #1", func(t *testing.T) {
		mockUsers.EXPECT().GetBalances(gomock.Any(), int64(7)).Return(nil, storage.ErrUserNotFound)

		balances, err := ledger.GetBalances(context.Background(), 7)
		if !errors.Is(err, storage.ErrUserNotFound) {
			t.Errorf("Expected '%v', got '%v'", storage.ErrUserNotFound, err)
		}
		if balances != nil {
			t.Errorf("Expected nil balances, got %+v", balances)
		}
	})

	t.Run("Success. Fresh user has zero balances #2", func(t *testing.T) {
		mockUsers.EXPECT().GetBalances(gomock.Any(), int64(42)).Return(&models.Balances{}, nil)

		balances, err := ledger.GetBalances(context.Background(), 42)
		if err != nil {
			t.Fatalf("Expected no error, got '%v'", err)
		}
		resp := balances.Response()
		if resp.USDT != 0 || resp.RUB != 0 || resp.UZS != 0 {
			t.Errorf("Expected zero balances, got %+v", resp)
		}
	})
}

func TestLedgerService_GrantBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUsers := mocks.NewMockUsersStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	ledger := NewLedger(mockUsers)

	deltas := models.Balances{
		USDT: decimal.RequireFromString("10.5"),
		RUB:  decimal.NewFromInt(100),
		UZS:  decimal.NewFromInt(1000),
	}

	testCases := []struct {
		Name          string
		Deltas        models.Balances
		SetupMocks    func()
		ExpectedError error
	}{
		{
			Name:          "Error. Fractional uzs #1",
			Deltas:        models.Balances{UZS: decimal.RequireFromString("0.5")},
			SetupMocks:    func() {},
			ExpectedError: ErrFractionalUZS,
		},
		{
			Name:          "Error. Usdt with nine decimal places #1.1",
			Deltas:        models.Balances{USDT: decimal.RequireFromString("0.123456789")},
			SetupMocks:    func() {},
			ExpectedError: ErrAmountPrecision,
		},
		{
			Name:          "Error. Negative rub too large #1.2",
			Deltas:        models.Balances{RUB: decimal.RequireFromString("-10000000000000")},
			SetupMocks:    func() {},
			ExpectedError: ErrAmountTooLarge,
		},
		{
			Name:   "Error. User not found #2",
			Deltas: deltas,
			SetupMocks: func() {
				mockUsers.EXPECT().GrantBalance(gomock.Any(), int64(42), deltas).Return(nil, storage.ErrUserNotFound)
			},
			ExpectedError: storage.ErrUserNotFound,
		},
		{
			Name:   "Error. Balance would become negative #3",
			Deltas: models.Balances{USDT: decimal.NewFromInt(-100)},
			SetupMocks: func() {
				mockUsers.EXPECT().GrantBalance(gomock.Any(), int64(42), gomock.Any()).Return(nil, storage.ErrInsufficientFunds)
			},
			ExpectedError: ErrInsufficientFunds,
		},
		{
			Name:   "Error. Storage failure #4",
			Deltas: deltas,
			SetupMocks: func() {
				mockUsers.EXPECT().GrantBalance(gomock.Any(), int64(42), deltas).Return(nil, errors.New("timeout"))
			},
			ExpectedError: errors.New("timeout"),
		},
		{
			Name:   "Success. Grant all currencies #5",
			Deltas: deltas,
			SetupMocks: func() {
				mockUsers.EXPECT().GrantBalance(gomock.Any(), int64(42), deltas).Return(&deltas, nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			balances, err := ledger.GrantBalance(ctx, 42, tc.Deltas)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
			}
			if err == nil && balances == nil {
				t.Errorf("Expected balances on success")
			}
		})
	}
}
