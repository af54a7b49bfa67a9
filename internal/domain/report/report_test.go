package report_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ledgerflow-api/internal/domain"
	"github.com/jhoicas/ledgerflow-api/internal/domain/entity"
	"github.com/jhoicas/ledgerflow-api/internal/domain/report"
)

var (
	periodStart = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	periodEnd   = time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC)
	generatedAt = time.Date(2026, 2, 3, 10, 30, 0, 0, time.UTC)
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestBuild_OutstandingExcluyeSaldoCeroYOrdenaPorMagnitud(t *testing.T) {
	customers := []*entity.Customer{
		{ID: 1, Name: "Asha", Phone: "111", Balance: dec("500")},
		{ID: 2, Name: "Ravi", Phone: "222", Balance: dec("-800")},
		{ID: 3, Name: "Meena", Phone: "333", Balance: decimal.Zero},
	}
	doc, err := report.Build(report.Request{
		Kind: report.KindOutstanding, StartDate: periodStart, EndDate: periodEnd, Customers: customers,
	}, generatedAt)
	require.NoError(t, err)

	require.Len(t, doc.Outstanding, 2, "el cliente con saldo cero no debe aparecer")
	assert.Equal(t, "Ravi", doc.Outstanding[0].Name)
	assert.True(t, dec("800").Equal(doc.Outstanding[0].Amount))
	assert.Equal(t, entity.StatusWillGet, doc.Outstanding[0].Status)
	assert.Equal(t, "Asha", doc.Outstanding[1].Name)
	assert.Equal(t, entity.StatusWillGive, doc.Outstanding[1].Status)
	assert.Nil(t, doc.Summary)
	assert.Empty(t, doc.Transactions)
}

func TestOutstandingRows_EmpatesConservanOrdenOriginal(t *testing.T) {
	customers := []*entity.Customer{
		{ID: 1, Name: "A", Balance: dec("100")},
		{ID: 2, Name: "B", Balance: dec("-100")},
		{ID: 3, Name: "C", Balance: dec("100")},
		{ID: 4, Name: "D", Balance: dec("300")},
	}
	rows := report.OutstandingRows(customers)
	names := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"D", "A", "B", "C"}, names)
}

func TestFilterByDate_RangoInclusivo(t *testing.T) {
	txs := []*entity.Transaction{
		{ID: 1, Date: periodStart.Add(-time.Second)},
		{ID: 2, Date: periodStart},
		{ID: 3, Date: periodStart.AddDate(0, 0, 10)},
		{ID: 4, Date: periodEnd},
		{ID: 5, Date: periodEnd.Add(time.Second)},
	}
	got := report.FilterByDate(txs, periodStart, periodEnd)
	require.Len(t, got, 3)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
	assert.Equal(t, int64(4), got[2].ID)
}

func TestBuild_SummaryLimitaADiezYUneNombres(t *testing.T) {
	customers := []*entity.Customer{
		{ID: 1, Name: "Asha", Balance: dec("500")},
		{ID: 2, Name: "Ravi", Balance: dec("-200")},
	}
	var txs []*entity.Transaction
	for i := 1; i <= 12; i++ {
		cid := int64(1)
		if i%2 == 0 {
			cid = 2
		}
		txs = append(txs, &entity.Transaction{
			ID: int64(i), CustomerID: cid, Type: entity.TransactionCredit,
			Amount: dec("10"), Description: fmt.Sprintf("t%d", i),
			Date: periodStart.AddDate(0, 0, i),
		})
	}
	// transacción de un cliente eliminado dentro del período
	txs = append([]*entity.Transaction{{ID: 99, CustomerID: 42, Type: entity.TransactionDebit, Amount: dec("1"), Date: periodStart}}, txs...)

	doc, err := report.Build(report.Request{
		Kind: report.KindSummary, StartDate: periodStart, EndDate: periodEnd,
		Customers: customers, Transactions: txs,
	}, generatedAt)
	require.NoError(t, err)

	require.NotNil(t, doc.Summary)
	assert.True(t, dec("500").Equal(doc.Summary.TotalToReceive))
	assert.True(t, dec("200").Equal(doc.Summary.TotalToPay))
	assert.True(t, dec("300").Equal(doc.Summary.NetBalance))
	assert.Equal(t, 2, doc.Summary.OutstandingCount)

	require.Len(t, doc.Transactions, report.SummaryTransactionLimit)
	assert.Equal(t, report.UnknownCustomer, doc.Transactions[0].CustomerName)
	assert.Equal(t, "-", doc.Transactions[0].Sign())
	assert.Equal(t, "Asha", doc.Transactions[1].CustomerName)
	assert.Equal(t, "+", doc.Transactions[1].Sign())
	assert.Equal(t, "t9", doc.Transactions[9].Description, "se respeta el orden recibido")
}

func TestBuild_TransactionsOrdenRecibido(t *testing.T) {
	customers := []*entity.Customer{{ID: 1, Name: "Asha"}}
	txs := []*entity.Transaction{
		{ID: 2, CustomerID: 1, Type: entity.TransactionDebit, Amount: dec("200"), RunningBalance: dec("300"), Date: periodStart.AddDate(0, 0, 2)},
		{ID: 1, CustomerID: 1, Type: entity.TransactionCredit, Amount: dec("500"), RunningBalance: dec("500"), Date: periodStart.AddDate(0, 0, 1)},
		{ID: 3, CustomerID: 1, Type: entity.TransactionCredit, Amount: dec("5"), Date: periodEnd.AddDate(0, 1, 0)},
	}
	doc, err := report.Build(report.Request{
		Kind: report.KindTransactions, StartDate: periodStart, EndDate: periodEnd,
		Customers: customers, Transactions: txs,
	}, generatedAt)
	require.NoError(t, err)

	require.Len(t, doc.Transactions, 2)
	assert.Equal(t, "Debit", doc.Transactions[0].TypeLabel())
	assert.True(t, dec("300").Equal(doc.Transactions[0].RunningBalance))
	assert.Equal(t, "Credit", doc.Transactions[1].TypeLabel())
	assert.Nil(t, doc.Summary)
}

func TestBuild_TipoDesconocido(t *testing.T) {
	_, err := report.Build(report.Request{Kind: "ventas", StartDate: periodStart, EndDate: periodEnd}, generatedAt)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBuild_RangoInvertido(t *testing.T) {
	_, err := report.Build(report.Request{Kind: report.KindSummary, StartDate: periodEnd, EndDate: periodStart}, generatedAt)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseKind_NormalizaMayusculas(t *testing.T) {
	k, err := report.ParseKind(" Summary ")
	require.NoError(t, err)
	assert.Equal(t, report.KindSummary, k)
}

func TestFileName_DeterministaPorTipoYFecha(t *testing.T) {
	assert.Equal(t, "ledgerflow-outstanding-report-2026-02-03.pdf",
		report.FileName(report.KindOutstanding, "pdf", generatedAt))
	assert.Equal(t, report.FileName(report.KindSummary, "pdf", generatedAt),
		report.FileName(report.KindSummary, "pdf", generatedAt.Add(time.Hour)))
}

func TestKind_Title(t *testing.T) {
	assert.Equal(t, "Outstanding Amounts Report", report.KindOutstanding.Title())
	assert.Equal(t, "Business Summary Report", report.KindSummary.Title())
	assert.Equal(t, "Transaction History Report", report.KindTransactions.Title())
}
