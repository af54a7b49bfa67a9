package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ledgerflow-api/internal/application/dto"
	"github.com/jhoicas/ledgerflow-api/internal/application/ledger"
	"github.com/jhoicas/ledgerflow-api/internal/domain"
	"github.com/jhoicas/ledgerflow-api/internal/domain/entity"
	"github.com/jhoicas/ledgerflow-api/internal/infrastructure/postgres"
	"github.com/jhoicas/ledgerflow-api/pkg/config"
	"github.com/jhoicas/ledgerflow-api/pkg/logger"
)

// Requiere LEDGER_TEST_DATABASE_URL apuntando a una base descartable.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("LEDGER_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("LEDGER_TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: url})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.EnsureSchema(ctx, pool))
	_, err = pool.Exec(ctx, `TRUNCATE customers, transactions, business_settings RESTART IDENTITY`)
	require.NoError(t, err)
	return pool
}

func TestPostgres_RegistroActualizaSaldoAtomicamente(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	locks := ledger.NewKeyedMutex()
	customers := ledger.NewCustomerUseCase(postgres.NewCustomerRepository(pool), locks)
	transactions := ledger.NewTransactionUseCase(
		postgres.NewTxRunner(pool), postgres.NewTransactionRepository(pool), locks, logger.Nop())

	c, err := customers.Create(ctx, dto.CreateCustomerRequest{Name: "Asha", Phone: "9998887771"})
	require.NoError(t, err)

	credit := decimal.NewFromInt(500)
	tx, err := transactions.Create(ctx, dto.CreateTransactionRequest{CustomerID: c.ID, Type: "credit", Amount: &credit})
	require.NoError(t, err)
	assert.True(t, credit.Equal(tx.RunningBalance))

	debit := decimal.NewFromInt(200)
	tx, err = transactions.Create(ctx, dto.CreateTransactionRequest{CustomerID: c.ID, Type: "debit", Amount: &debit})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(300).Equal(tx.RunningBalance))

	got, err := customers.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(300).Equal(got.Balance))

	require.NoError(t, customers.Delete(ctx, c.ID))
	_, err = customers.Get(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = transactions.Create(ctx, dto.CreateTransactionRequest{CustomerID: c.ID, Type: "credit", Amount: &credit})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPostgres_SeedConservaIDsYAvanzaSecuencia(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	err := postgres.Seed(ctx, pool,
		[]*entity.Customer{{ID: 7, Name: "Ravi", Phone: "2", Balance: decimal.NewFromInt(-50), CreatedAt: now, LastTransaction: now}},
		[]*entity.Transaction{{ID: 3, CustomerID: 7, Type: entity.TransactionDebit, Amount: decimal.NewFromInt(50), Date: now, RunningBalance: decimal.NewFromInt(-50)}},
		&entity.Business{Name: "Kirana"},
	)
	require.NoError(t, err)

	repo := postgres.NewCustomerRepository(pool)
	next := &entity.Customer{Name: "Meena", Phone: "3", CreatedAt: now, LastTransaction: now}
	require.NoError(t, repo.Create(ctx, next))
	assert.Equal(t, int64(8), next.ID)

	b, err := postgres.NewBusinessRepository(pool).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Kirana", b.Name)

	txs, err := postgres.NewTransactionRepository(pool).ListByCustomer(ctx, 7)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, entity.TransactionDebit, txs[0].Type)
}
