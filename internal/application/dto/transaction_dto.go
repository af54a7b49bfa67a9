package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest body para POST /api/transactions.
// Amount nil significa ausente; Date nil usa la hora de creación.
type CreateTransactionRequest struct {
	CustomerID  int64            `json:"customer_id"`
	Type        string           `json:"type"` // credit | debit
	Amount      *decimal.Decimal `json:"amount"`
	Description string           `json:"description,omitempty"`
	Date        *time.Time       `json:"date,omitempty"`
}

// UpdateTransactionRequest body para PUT /api/transactions/:id. Campos nil se conservan.
type UpdateTransactionRequest struct {
	Type        *string          `json:"type,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Description *string          `json:"description,omitempty"`
	Date        *time.Time       `json:"date,omitempty"`
}

// TransactionResponse transacción en respuestas.
type TransactionResponse struct {
	ID             int64           `json:"id"`
	CustomerID     int64           `json:"customer_id"`
	Type           string          `json:"type"`
	Amount         decimal.Decimal `json:"amount"`
	Description    string          `json:"description"`
	Date           time.Time       `json:"date"`
	RunningBalance decimal.Decimal `json:"running_balance"`
}
