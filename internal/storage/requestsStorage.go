package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/denmor86/tg-ledger/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// pgerrcode foreign_key_violation
const foreignKeyViolation = "23503"

// Запросы к таблице заявок одного типа
type requestQueries struct {
	Insert   string
	Get      string
	Lock     string
	ByUser   string
	Pending  string
	Finalize string
}

const requestColumns = `id, user_id, currency, amount, status, created_at, decided_at`

func newRequestQueries(table string) requestQueries {
	return requestQueries{
		Insert: fmt.Sprintf(`INSERT INTO %s (user_id, currency, amount, status, created_at) 
								VALUES ($1, $2, $3, $4, $5) 
								RETURNING id;`, table),
		Get:  fmt.Sprintf(`SELECT %s FROM %s WHERE id=$1;`, requestColumns, table),
		Lock: fmt.Sprintf(`SELECT %s FROM %s WHERE id=$1 FOR UPDATE;`, requestColumns, table),
		ByUser: fmt.Sprintf(`SELECT %s FROM %s WHERE user_id=$1 
								ORDER BY created_at DESC, id DESC LIMIT $2;`, requestColumns, table),
		Pending: fmt.Sprintf(`SELECT %s FROM %s WHERE status='pending' 
								ORDER BY created_at DESC, id DESC LIMIT $1;`, requestColumns, table),
		Finalize: fmt.Sprintf(`UPDATE %s 
								SET status = $1, decided_at = $2 
								WHERE id = $3 AND status = 'pending';`, table),
	}
}

type RequestDatabase struct {
	DB      *Database
	Users   *UserDatabase
	queries map[models.RequestKind]requestQueries
}

// Создание хранилища
func NewRequestsStorage(db *Database, users *UserDatabase) *RequestDatabase {
	return &RequestDatabase{
		DB:    db,
		Users: users,
		queries: map[models.RequestKind]requestQueries{
			models.KindDeposit:  newRequestQueries("DEPOSITS"),
			models.KindWithdraw: newRequestQueries("WITHDRAWS"),
		},
	}
}

func (s *RequestDatabase) queriesFor(kind models.RequestKind) (requestQueries, error) {
	q, ok := s.queries[kind]
	if !ok {
		return requestQueries{}, models.ErrUnknownKind
	}
	return q, nil
}

// AddRequest - сохраняет заявку и возвращает её идентификатор
func (s *RequestDatabase) AddRequest(ctx context.Context, req models.RequestData) (int64, error) {
	q, err := s.queriesFor(req.Kind)
	if err != nil {
		return 0, err
	}
	var id int64
	err = s.DB.Pool.QueryRow(ctx, q.Insert,
		req.UserID,
		string(req.Currency),
		req.Amount,
		string(req.Status),
		req.CreatedAt,
	).Scan(&id)

	if err == nil {
		return id, nil
	}

	// Пользователь отсутствует
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return 0, ErrUserNotFound
	}

	return 0, fmt.Errorf("failed to add %s request: %w", req.Kind, err)
}

func (s *RequestDatabase) GetRequest(ctx context.Context, kind models.RequestKind, id int64) (*models.RequestData, error) {
	q, err := s.queriesFor(kind)
	if err != nil {
		return nil, err
	}
	req, err := scanRequest(s.DB.Pool.QueryRow(ctx, q.Get, id), kind)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get request: %w", err)
	}
	return req, nil
}

// GetUserRequests - последние заявки пользователя, новые первыми
func (s *RequestDatabase) GetUserRequests(ctx context.Context, kind models.RequestKind, userID int64, limit int) ([]models.RequestData, error) {
	q, err := s.queriesFor(kind)
	if err != nil {
		return nil, err
	}
	return s.queryRequests(ctx, kind, q.ByUser, userID, limit)
}

// GetPendingRequests - последние необработанные заявки всех пользователей
func (s *RequestDatabase) GetPendingRequests(ctx context.Context, kind models.RequestKind, limit int) ([]models.RequestData, error) {
	q, err := s.queriesFor(kind)
	if err != nil {
		return nil, err
	}
	return s.queryRequests(ctx, kind, q.Pending, limit)
}

// DecideRequest - перевод заявки в конечный статус и изменение баланса в одной транзакции.
// Строка заявки блокируется до конца транзакции, поэтому из двух одновременных
// решений pending увидит только одно.
func (s *RequestDatabase) DecideRequest(ctx context.Context, decision models.Decision, decidedAt time.Time) (*models.RequestData, error) {
	q, err := s.queriesFor(decision.Kind)
	if err != nil {
		return nil, err
	}

	var decided *models.RequestData
	err = s.DB.InTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
		req, err := scanRequest(tx.QueryRow(ctx, q.Lock, decision.ID), decision.Kind)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrRequestNotFound
			}
			return fmt.Errorf("failed to lock request: %w", err)
		}

		target := decision.Target()
		if !req.Status.CanTransition(target) {
			return ErrAlreadyProcessed
		}

		// 1. Изменяем баланс (для отклонения delta нулевая)
		if delta := decision.Delta(*req); !delta.IsZero() {
			if _, err := s.Users.adjustBalance(ctx, tx, req.UserID, req.Currency, delta); err != nil {
				return err
			}
		}

		// 2. Фиксируем статус
		tag, err := tx.Exec(ctx, q.Finalize, string(target), decidedAt, decision.ID)
		if err != nil {
			return fmt.Errorf("failed to update request status: %w", err)
		}
		if tag.RowsAffected() != 1 {
			return ErrAlreadyProcessed
		}

		req.Status = target
		req.DecidedAt = &decidedAt
		decided = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return decided, nil
}

func (s *RequestDatabase) queryRequests(ctx context.Context, kind models.RequestKind, query string, args ...any) ([]models.RequestData, error) {
	rows, err := s.DB.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s requests: %w", kind, err)
	}
	defer rows.Close()

	var requests []models.RequestData
	for rows.Next() {
		req, err := scanRequest(rows, kind)
		if err != nil {
			return requests, fmt.Errorf("failed scan %s request: %w", kind, err)
		}
		requests = append(requests, *req)
	}
	return requests, rows.Err()
}

func scanRequest(row pgx.Row, kind models.RequestKind) (*models.RequestData, error) {
	var (
		id        int64
		userID    int64
		currency  string
		amount    decimal.Decimal
		status    string
		createdAt time.Time
		decidedAt *time.Time
	)
	err := row.Scan(
		&id,
		&userID,
		&currency,
		&amount,
		&status,
		&createdAt,
		&decidedAt,
	)
	if err != nil {
		return nil, err
	}
	return &models.RequestData{
		ID:        id,
		Kind:      kind,
		UserID:    userID,
		Currency:  models.Currency(currency),
		Amount:    amount,
		Status:    models.RequestStatus(status),
		CreatedAt: createdAt,
		DecidedAt: decidedAt,
	}, nil
}
