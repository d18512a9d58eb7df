package services

import (
	"cmp"
	"context"
	"slices"

	"github.com/denmor86/tg-ledger/internal/logger"
	"github.com/denmor86/tg-ledger/internal/models"
	"github.com/denmor86/tg-ledger/internal/storage"
	"go.uber.org/zap"
)

const (
	// HistoryPerKind - сколько последних заявок каждого типа читается для истории
	HistoryPerKind = 50
	// HistoryLimit - размер итоговой истории пользователя
	HistoryLimit = 50
	// PendingPerKind - сколько необработанных заявок каждого типа показывается администратору
	PendingPerKind = 100
)

type HistoryService interface {
	HistoryFor(ctx context.Context, userID int64) ([]models.RequestData, error)
	PendingQueue(ctx context.Context) ([]models.RequestData, error)
}

type History struct {
	Requests storage.RequestsStorage
}

// Создание сервиса
func NewHistory(requests storage.RequestsStorage) HistoryService {
	return &History{Requests: requests}
}

// HistoryFor возвращает последние операции пользователя, новые первыми
func (s *History) HistoryFor(ctx context.Context, userID int64) ([]models.RequestData, error) {
	deposits, err := s.Requests.GetUserRequests(ctx, models.KindDeposit, userID, HistoryPerKind)
	if err != nil {
		logger.Error("Failed to get deposits:", zap.Error(err))
		return nil, err
	}
	withdraws, err := s.Requests.GetUserRequests(ctx, models.KindWithdraw, userID, HistoryPerKind)
	if err != nil {
		logger.Error("Failed to get withdraws:", zap.Error(err))
		return nil, err
	}
	return MergeRequests(HistoryLimit, deposits, withdraws), nil
}

// PendingQueue возвращает необработанные заявки всех пользователей без усечения
func (s *History) PendingQueue(ctx context.Context) ([]models.RequestData, error) {
	deposits, err := s.Requests.GetPendingRequests(ctx, models.KindDeposit, PendingPerKind)
	if err != nil {
		logger.Error("Failed to get pending deposits:", zap.Error(err))
		return nil, err
	}
	withdraws, err := s.Requests.GetPendingRequests(ctx, models.KindWithdraw, PendingPerKind)
	if err != nil {
		logger.Error("Failed to get pending withdraws:", zap.Error(err))
		return nil, err
	}
	return MergeRequests(0, deposits, withdraws), nil
}

// MergeRequests объединяет списки заявок и сортирует по времени создания (новые первыми).
// При равном времени выше заявка с большим id, затем вывод перед пополнением.
// limit <= 0 - без усечения.
func MergeRequests(limit int, lists ...[]models.RequestData) []models.RequestData {
	total := 0
	for _, l := range lists {
		total += len(l)
	}
	merged := make([]models.RequestData, 0, total)
	for _, l := range lists {
		merged = append(merged, l...)
	}

	slices.SortFunc(merged, func(a, b models.RequestData) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		if c := cmp.Compare(b.ID, a.ID); c != 0 {
			return c
		}
		return cmp.Compare(b.Kind, a.Kind)
	})

	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}
