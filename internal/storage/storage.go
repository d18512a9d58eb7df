package storage

//go:generate mockgen -destination=mocks/mock_storage.go -package=mocks . IStorage,RequestsStorage,UsersStorage

import (
	"context"
	"errors"
	"time"

	"github.com/denmor86/tg-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// UsersStorage - пользователи и их балансы
type UsersStorage interface {
	UpsertUser(ctx context.Context, userID int64, username string) error
	GetUser(ctx context.Context, userID int64) (*models.UserData, error)
	GetBalances(ctx context.Context, userID int64) (*models.Balances, error)
	AdjustBalance(ctx context.Context, userID int64, currency models.Currency, delta decimal.Decimal) (*models.Balances, error)
	GrantBalance(ctx context.Context, userID int64, deltas models.Balances) (*models.Balances, error)
}

// RequestsStorage - заявки на пополнение и вывод
type RequestsStorage interface {
	AddRequest(ctx context.Context, req models.RequestData) (int64, error)
	GetRequest(ctx context.Context, kind models.RequestKind, id int64) (*models.RequestData, error)
	GetUserRequests(ctx context.Context, kind models.RequestKind, userID int64, limit int) ([]models.RequestData, error)
	GetPendingRequests(ctx context.Context, kind models.RequestKind, limit int) ([]models.RequestData, error)
	DecideRequest(ctx context.Context, decision models.Decision, decidedAt time.Time) (*models.RequestData, error)
}

// IStorage - полный интерфейс хранилища
type IStorage interface {
	UsersStorage
	RequestsStorage
	Ping(ctx context.Context) error
}

type Storage struct {
	UsersStorage
	RequestsStorage
	DB *Database
}

// Создание хранилища
func NewStorage(db *Database) *Storage {
	users := NewUsersStorage(db)
	return &Storage{
		UsersStorage:    users,
		RequestsStorage: NewRequestsStorage(db, users),
		DB:              db,
	}
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.Ping(ctx)
}

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrRequestNotFound   = errors.New("request not found")
	ErrAlreadyProcessed  = errors.New("already processed")
	ErrInsufficientFunds = errors.New("insufficient funds")
)
