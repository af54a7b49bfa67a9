package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType tipo de movimiento del libro de caja.
type TransactionType string

// Tipos de transacción.
const (
	TransactionCredit TransactionType = "credit" // el negocio entregó valor: aumenta el saldo
	TransactionDebit  TransactionType = "debit"  // el cliente pagó: disminuye el saldo
)

// Valid indica si el tipo es uno de los soportados.
func (t TransactionType) Valid() bool {
	return t == TransactionCredit || t == TransactionDebit
}

// Transaction representa un movimiento de un cliente.
// Amount siempre es positivo; el signo lo define Type.
// RunningBalance es el saldo del cliente inmediatamente después de aplicar este movimiento.
type Transaction struct {
	ID             int64
	CustomerID     int64
	Type           TransactionType
	Amount         decimal.Decimal
	Description    string
	Date           time.Time
	RunningBalance decimal.Decimal
}

// Delta devuelve el efecto firmado del movimiento sobre el saldo.
func (t *Transaction) Delta() decimal.Decimal {
	if t.Type == TransactionCredit {
		return t.Amount
	}
	return t.Amount.Neg()
}
