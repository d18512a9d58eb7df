package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// RequestKind - тип заявки: пополнение или вывод
type RequestKind string

const (
	KindDeposit  RequestKind = "deposit"
	KindWithdraw RequestKind = "withdraw"
)

// RequestStatus - статус заявки
type RequestStatus string

// Статусы заявок
const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

// Action - решение администратора по заявке
type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

var (
	ErrUnknownKind   = errors.New("unknown request type")
	ErrUnknownAction = errors.New("unknown action")
)

// ParseKind приводит строку к типу заявки
func ParseKind(s string) (RequestKind, error) {
	k := RequestKind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case KindDeposit, KindWithdraw:
		return k, nil
	}
	return "", ErrUnknownKind
}

// ParseAction приводит строку к решению администратора
func ParseAction(s string) (Action, error) {
	a := Action(strings.ToLower(strings.TrimSpace(s)))
	switch a {
	case ActionApprove, ActionReject:
		return a, nil
	}
	return "", ErrUnknownAction
}

// Terminal - заявка уже обработана и больше не меняется
func (s RequestStatus) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// CanTransition - допустимы только переходы pending -> approved | rejected
func (s RequestStatus) CanTransition(to RequestStatus) bool {
	return s == StatusPending && to.Terminal()
}

// RequestData - модель заявки из хранилища
type RequestData struct {
	ID        int64
	Kind      RequestKind
	UserID    int64
	Currency  Currency
	Amount    decimal.Decimal
	Status    RequestStatus
	CreatedAt time.Time
	DecidedAt *time.Time
}

// Decision - решение по конкретной заявке
type Decision struct {
	Kind   RequestKind
	ID     int64
	Action Action
}

// Target возвращает статус, в который переходит заявка
func (d Decision) Target() RequestStatus {
	if d.Action == ActionApprove {
		return StatusApproved
	}
	return StatusRejected
}

// Delta возвращает изменение баланса пользователя при исполнении решения
func (d Decision) Delta(req RequestData) decimal.Decimal {
	if d.Action != ActionApprove {
		return decimal.Zero
	}
	if req.Kind == KindWithdraw {
		return req.Amount.Neg()
	}
	return req.Amount
}

// CreateRequest - заявка на пополнение или вывод, приходит извне
type CreateRequest struct {
	UserID   int64           `json:"userId"`
	Currency string          `json:"currency"`
	Amount   decimal.Decimal `json:"amount"`
}

// CreateResponse - ответ на создание заявки
type CreateResponse struct {
	Status RequestStatus `json:"status"`
	ID     int64         `json:"id"`
}

// DecisionRequest - решение администратора, приходит извне
type DecisionRequest struct {
	AdminID     int64  `json:"adminId"`
	RequestType string `json:"requestType"`
	RequestID   int64  `json:"requestId"`
	Action      string `json:"action"`
}

// DecisionResponse - итоговый статус заявки
type DecisionResponse struct {
	Status RequestStatus `json:"status"`
}

// HistoryItem - элемент истории операций для выдачи
type HistoryItem struct {
	ID        int64         `json:"id"`
	UserID    int64         `json:"user_id,omitempty"`
	Type      RequestKind   `json:"type"`
	Currency  Currency      `json:"currency"`
	Amount    float64       `json:"amount"`
	Status    RequestStatus `json:"status"`
	CreatedAt string        `json:"created_at"`
}

// HistoryResponse - список операций
type HistoryResponse struct {
	Items []HistoryItem `json:"items"`
}

// StatusResponse - простой ответ со статусом
type StatusResponse struct {
	Status string `json:"status"`
}

// ErrorResponse - тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}
