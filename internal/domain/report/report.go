// Package report arma los datos estructurados de los reportes del libro de caja
// (pendientes, resumen e historial) a partir de un snapshot de clientes y
// transacciones. La maquetación del documento final es responsabilidad del renderer.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ledgerflow-api/internal/domain"
	"github.com/jhoicas/ledgerflow-api/internal/domain/entity"
	"github.com/jhoicas/ledgerflow-api/internal/domain/ledger"
)

// Kind tipo de reporte.
type Kind string

// Tipos de reporte soportados.
const (
	KindOutstanding  Kind = "outstanding"
	KindSummary      Kind = "summary"
	KindTransactions Kind = "transactions"
)

// SummaryTransactionLimit máximo de transacciones listadas en el reporte resumen.
const SummaryTransactionLimit = 10

// UnknownCustomer nombre mostrado cuando la transacción apunta a un cliente eliminado.
const UnknownCustomer = "Unknown"

// ParseKind valida el tipo de reporte.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindOutstanding, KindSummary, KindTransactions:
		return k, nil
	}
	return "", domain.NewValidationError("kind", fmt.Sprintf("tipo de reporte desconocido %q", s))
}

// Title título de la sección principal del reporte.
func (k Kind) Title() string {
	switch k {
	case KindOutstanding:
		return "Outstanding Amounts Report"
	case KindSummary:
		return "Business Summary Report"
	case KindTransactions:
		return "Transaction History Report"
	}
	return string(k)
}

// Request snapshot y parámetros de un reporte.
type Request struct {
	Kind         Kind
	StartDate    time.Time
	EndDate      time.Time
	Customers    []*entity.Customer
	Transactions []*entity.Transaction // en el orden que debe mostrarse
}

// OutstandingRow fila del reporte de pendientes.
type OutstandingRow struct {
	Name   string
	Phone  string
	Amount decimal.Decimal // |saldo|
	Status string          // "Will Give" | "Will Get"
}

// TransactionRow transacción unida con el nombre de su cliente.
type TransactionRow struct {
	Date           time.Time
	CustomerName   string
	Description    string
	Type           entity.TransactionType
	Amount         decimal.Decimal
	RunningBalance decimal.Decimal
}

// Sign "+" para credit, "-" para debit.
func (r TransactionRow) Sign() string {
	if r.Type == entity.TransactionCredit {
		return "+"
	}
	return "-"
}

// TypeLabel "Credit" o "Debit".
func (r TransactionRow) TypeLabel() string {
	if r.Type == entity.TransactionCredit {
		return "Credit"
	}
	return "Debit"
}

// Document datos del reporte listos para renderizar.
// Solo se llenan las secciones que corresponden a Kind.
type Document struct {
	Kind         Kind
	GeneratedAt  time.Time
	StartDate    time.Time
	EndDate      time.Time
	Outstanding  []OutstandingRow
	Summary      *ledger.Totals
	Transactions []TransactionRow
}

// Build filtra y agrega el snapshot según el tipo de reporte.
func Build(req Request, now time.Time) (*Document, error) {
	if _, err := ParseKind(string(req.Kind)); err != nil {
		return nil, err
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, domain.NewValidationError("end_date", "la fecha final es anterior a la inicial")
	}

	doc := &Document{
		Kind:        req.Kind,
		GeneratedAt: now,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}
	filtered := FilterByDate(req.Transactions, req.StartDate, req.EndDate)

	switch req.Kind {
	case KindOutstanding:
		doc.Outstanding = OutstandingRows(req.Customers)
	case KindSummary:
		totals := ledger.ComputeTotals(req.Customers)
		doc.Summary = &totals
		if len(filtered) > SummaryTransactionLimit {
			filtered = filtered[:SummaryTransactionLimit]
		}
		doc.Transactions = TransactionRows(filtered, req.Customers)
	case KindTransactions:
		doc.Transactions = TransactionRows(filtered, req.Customers)
	}
	return doc, nil
}

// FilterByDate conserva las transacciones con fecha en [start, end] (inclusivo), sin reordenar.
func FilterByDate(txs []*entity.Transaction, start, end time.Time) []*entity.Transaction {
	out := make([]*entity.Transaction, 0, len(txs))
	for _, t := range txs {
		if t.Date.Before(start) || t.Date.After(end) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// OutstandingRows clientes con saldo distinto de cero ordenados por |saldo| descendente.
// El orden es estable: los empates conservan el orden original.
func OutstandingRows(customers []*entity.Customer) []OutstandingRow {
	selected := make([]*entity.Customer, 0, len(customers))
	for _, c := range customers {
		if c.Outstanding() {
			selected = append(selected, c)
		}
	}
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Balance.Abs().GreaterThan(selected[j].Balance.Abs())
	})
	rows := make([]OutstandingRow, 0, len(selected))
	for _, c := range selected {
		rows = append(rows, OutstandingRow{
			Name:   c.Name,
			Phone:  c.Phone,
			Amount: c.Balance.Abs(),
			Status: c.Status(),
		})
	}
	return rows
}

// TransactionRows une cada transacción con el nombre de su cliente, en el orden recibido.
func TransactionRows(txs []*entity.Transaction, customers []*entity.Customer) []TransactionRow {
	names := make(map[int64]string, len(customers))
	for _, c := range customers {
		names[c.ID] = c.Name
	}
	rows := make([]TransactionRow, 0, len(txs))
	for _, t := range txs {
		name, ok := names[t.CustomerID]
		if !ok {
			name = UnknownCustomer
		}
		rows = append(rows, TransactionRow{
			Date:           t.Date,
			CustomerName:   name,
			Description:    t.Description,
			Type:           t.Type,
			Amount:         t.Amount,
			RunningBalance: t.RunningBalance,
		})
	}
	return rows
}

// FileName nombre determinista del archivo: ledgerflow-<kind>-report-<YYYY-MM-DD>.<format>
func FileName(kind Kind, format string, now time.Time) string {
	return fmt.Sprintf("ledgerflow-%s-report-%s.%s", kind, now.Format("2006-01-02"), format)
}
