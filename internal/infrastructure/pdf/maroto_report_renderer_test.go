package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ledgerflow-api/internal/domain/entity"
	"github.com/jhoicas/ledgerflow-api/internal/domain/ledger"
	domainreport "github.com/jhoicas/ledgerflow-api/internal/domain/report"
	"github.com/jhoicas/ledgerflow-api/internal/infrastructure/pdf"
)

var now = time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

func TestRender_CadaTipoGeneraPDF(t *testing.T) {
	customers := []*entity.Customer{
		{ID: 1, Name: "Asha", Phone: "9998887771", Balance: decimal.NewFromInt(300)},
		{ID: 2, Name: "Ravi", Phone: "5551234", Balance: decimal.NewFromInt(-120)},
	}
	txs := []*entity.Transaction{
		{ID: 2, CustomerID: 1, Type: entity.TransactionDebit, Amount: decimal.NewFromInt(200), Description: "pago", Date: now.Add(-time.Hour), RunningBalance: decimal.NewFromInt(300)},
		{ID: 1, CustomerID: 1, Type: entity.TransactionCredit, Amount: decimal.NewFromInt(500), Date: now.Add(-2 * time.Hour), RunningBalance: decimal.NewFromInt(500)},
	}
	r := pdf.NewMarotoReportRenderer(nil, "LedgerFlow")
	assert.Equal(t, "pdf", r.Format())
	assert.Equal(t, "application/pdf", r.ContentType())

	for _, kind := range []domainreport.Kind{domainreport.KindOutstanding, domainreport.KindSummary, domainreport.KindTransactions} {
		t.Run(string(kind), func(t *testing.T) {
			doc, err := domainreport.Build(domainreport.Request{
				Kind: kind, EndDate: now, Customers: customers, Transactions: txs,
			}, now)
			require.NoError(t, err)

			out, err := r.Render(context.Background(), doc)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe ser un PDF")
		})
	}
}

func TestRender_EstadosVacios(t *testing.T) {
	r := pdf.NewMarotoReportRenderer(nil, "")
	for _, doc := range []*domainreport.Document{
		{Kind: domainreport.KindOutstanding, GeneratedAt: now, EndDate: now},
		{Kind: domainreport.KindTransactions, GeneratedAt: now, EndDate: now},
		{Kind: domainreport.KindSummary, GeneratedAt: now, EndDate: now, Summary: &ledger.Totals{}},
	} {
		out, err := r.Render(context.Background(), doc)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	}
}

func TestRender_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := pdf.NewMarotoReportRenderer(nil, "").Render(ctx, &domainreport.Document{Kind: domainreport.KindSummary})
	assert.ErrorIs(t, err, context.Canceled)
}
