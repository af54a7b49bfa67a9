// Package ledger contiene las reglas puras del libro de caja: aplicación de
// movimientos sobre el saldo y agregados del negocio. No depende de almacenamiento.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ledgerflow-api/internal/domain/entity"
)

// Delta devuelve el efecto firmado de un movimiento: +amount para credit, -amount para debit.
func Delta(t entity.TransactionType, amount decimal.Decimal) decimal.Decimal {
	if t == entity.TransactionCredit {
		return amount
	}
	return amount.Neg()
}

// Apply calcula el nuevo saldo tras aplicar el movimiento.
// NuevoSaldo = SaldoActual + Delta(tipo, monto)
func Apply(balance decimal.Decimal, t entity.TransactionType, amount decimal.Decimal) decimal.Decimal {
	return balance.Add(Delta(t, amount))
}

// Totals agregados del negocio sobre un snapshot de clientes.
type Totals struct {
	TotalToReceive   decimal.Decimal // Σ max(saldo, 0)
	TotalToPay       decimal.Decimal // Σ max(-saldo, 0)
	NetBalance       decimal.Decimal // TotalToReceive - TotalToPay
	CustomerCount    int
	OutstandingCount int // clientes con saldo distinto de cero
}

// NetStatus etiqueta del saldo neto: "Positive", "Negative" o "Balanced".
func (t Totals) NetStatus() string {
	switch {
	case t.NetBalance.IsPositive():
		return "Positive"
	case t.NetBalance.IsNegative():
		return "Negative"
	default:
		return "Balanced"
	}
}

// ComputeTotals pliega el snapshot de clientes. Función pura: no muta la entrada.
func ComputeTotals(customers []*entity.Customer) Totals {
	t := Totals{
		TotalToReceive: decimal.Zero,
		TotalToPay:     decimal.Zero,
		CustomerCount:  len(customers),
	}
	for _, c := range customers {
		switch {
		case c.Balance.IsPositive():
			t.TotalToReceive = t.TotalToReceive.Add(c.Balance)
			t.OutstandingCount++
		case c.Balance.IsNegative():
			t.TotalToPay = t.TotalToPay.Add(c.Balance.Neg())
			t.OutstandingCount++
		}
	}
	t.NetBalance = t.TotalToReceive.Sub(t.TotalToPay)
	return t
}
