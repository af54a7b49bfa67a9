package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/ledgerflow-api/internal/domain/entity"
	"github.com/jhoicas/ledgerflow-api/internal/domain/ledger"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestApply_CreditSumaDebitResta(t *testing.T) {
	b := ledger.Apply(decimal.Zero, entity.TransactionCredit, dec("500"))
	assert.True(t, dec("500").Equal(b), "credit debe sumar al saldo")

	b = ledger.Apply(b, entity.TransactionDebit, dec("200"))
	assert.True(t, dec("300").Equal(b), "debit debe restar al saldo")
}

func TestApply_DebitPuedeDejarSaldoNegativo(t *testing.T) {
	b := ledger.Apply(dec("100"), entity.TransactionDebit, dec("250.75"))
	assert.True(t, dec("-150.75").Equal(b))
}

func TestComputeTotals_DosClientes(t *testing.T) {
	customers := []*entity.Customer{
		{ID: 1, Balance: dec("500")},
		{ID: 2, Balance: dec("-200")},
	}
	totals := ledger.ComputeTotals(customers)

	assert.True(t, dec("500").Equal(totals.TotalToReceive))
	assert.True(t, dec("200").Equal(totals.TotalToPay))
	assert.True(t, dec("300").Equal(totals.NetBalance))
	assert.Equal(t, 2, totals.CustomerCount)
	assert.Equal(t, 2, totals.OutstandingCount)
	assert.Equal(t, "Positive", totals.NetStatus())
}

func TestComputeTotals_SinClientes(t *testing.T) {
	totals := ledger.ComputeTotals(nil)
	assert.True(t, totals.TotalToReceive.IsZero())
	assert.True(t, totals.TotalToPay.IsZero())
	assert.Equal(t, 0, totals.CustomerCount)
	assert.Equal(t, "Balanced", totals.NetStatus())
}

// La diferencia receive - pay siempre coincide con la suma de saldos.
func TestComputeTotals_NetoIgualSumaDeSaldos(t *testing.T) {
	sets := [][]string{
		{"0", "0"},
		{"10.5", "-3.25", "0", "7"},
		{"-1000", "-0.01"},
		{"999999.99", "-999999.98", "42"},
	}
	for _, set := range sets {
		customers := make([]*entity.Customer, 0, len(set))
		sum := decimal.Zero
		for i, s := range set {
			customers = append(customers, &entity.Customer{ID: int64(i + 1), Balance: dec(s)})
			sum = sum.Add(dec(s))
		}
		totals := ledger.ComputeTotals(customers)
		assert.True(t, sum.Equal(totals.TotalToReceive.Sub(totals.TotalToPay)), "set %v", set)
		assert.False(t, totals.TotalToPay.IsNegative())
		assert.False(t, totals.TotalToReceive.IsNegative())
	}
}

func TestComputeTotals_NoMutaEntrada(t *testing.T) {
	customers := []*entity.Customer{{ID: 1, Balance: dec("-5")}}
	_ = ledger.ComputeTotals(customers)
	assert.True(t, dec("-5").Equal(customers[0].Balance))
}

func TestTotals_NetStatusNegativo(t *testing.T) {
	totals := ledger.ComputeTotals([]*entity.Customer{{ID: 1, Balance: dec("-800")}, {ID: 2, Balance: dec("500")}})
	assert.Equal(t, "Negative", totals.NetStatus())
	assert.Equal(t, 2, totals.OutstandingCount)
}
