package services

//go:generate mockgen -destination=mocks/mock_services.go -package=mocks . AdminService,HistoryService,LedgerService,RequestsService

import (
	"errors"
	"fmt"

	"github.com/denmor86/tg-ledger/internal/models"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidKind     = fmt.Errorf("%w: bad request type", ErrInvalidArgument)
	ErrInvalidCurrency = fmt.Errorf("%w: bad currency", ErrInvalidArgument)
	ErrInvalidAmount   = fmt.Errorf("%w: amount must be > 0", ErrInvalidArgument)
	ErrFractionalUZS   = fmt.Errorf("%w: uzs amount must be a whole number", ErrInvalidArgument)
	ErrAmountPrecision = fmt.Errorf("%w: amount has more than 8 decimal places", ErrInvalidArgument)
	ErrAmountTooLarge  = fmt.Errorf("%w: amount is too large", ErrInvalidArgument)
	ErrInvalidAction   = fmt.Errorf("%w: bad action", ErrInvalidArgument)

	ErrForbidden = errors.New("not admin")

	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrInsufficientFundsNow = fmt.Errorf("%w now", ErrInsufficientFunds)
)

// amountError переводит ошибку проверки суммы в ошибку сервиса
func amountError(err error) error {
	switch {
	case errors.Is(err, models.ErrFractionalAmount):
		return ErrFractionalUZS
	case errors.Is(err, models.ErrAmountPrecision):
		return ErrAmountPrecision
	case errors.Is(err, models.ErrAmountTooLarge):
		return ErrAmountTooLarge
	}
	return ErrInvalidAmount
}
