package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ledgerflow-api/internal/domain"
	"github.com/jhoicas/ledgerflow-api/internal/domain/entity"
	"github.com/jhoicas/ledgerflow-api/internal/domain/repository"
	"github.com/jhoicas/ledgerflow-api/internal/infrastructure/memory"
)

var fixedNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func newStore() *memory.Store {
	return memory.New(memory.WithClock(func() time.Time { return fixedNow }))
}

func TestCustomerRepo_IDsIncrementalesSinReusar(t *testing.T) {
	ctx := context.Background()
	repo := newStore().Customers()

	a := &entity.Customer{Name: "A", Phone: "1"}
	b := &entity.Customer{Name: "B", Phone: "2"}
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))
	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)

	require.NoError(t, repo.Delete(ctx, b.ID))
	c := &entity.Customer{Name: "C", Phone: "3"}
	require.NoError(t, repo.Create(ctx, c))
	assert.Equal(t, int64(3), c.ID, "el ID del cliente eliminado no se reutiliza")
}

func TestCustomerRepo_LoadArrancaDesdeMayorID(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	s.Load([]*entity.Customer{{ID: 7, Name: "X"}, {ID: 3, Name: "Y"}}, nil, nil)

	c := &entity.Customer{Name: "Z"}
	require.NoError(t, s.Customers().Create(ctx, c))
	assert.Equal(t, int64(8), c.ID)
}

func TestCustomerRepo_LecturasDevuelvenCopias(t *testing.T) {
	ctx := context.Background()
	repo := newStore().Customers()
	c := &entity.Customer{Name: "A", Phone: "1"}
	require.NoError(t, repo.Create(ctx, c))

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	got.Name = "mutado"
	got.Balance = decimal.NewFromInt(999)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	list[0].Name = "mutado"

	again, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", again.Name)
	assert.True(t, again.Balance.IsZero())
}

func TestCustomerRepo_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := newStore().Customers()

	_, err := repo.GetByID(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, &entity.Customer{ID: 1}), domain.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, 1), domain.ErrNotFound)
	assert.ErrorIs(t, repo.SetBalance(ctx, 1, decimal.NewFromInt(1)), domain.ErrNotFound)
}

func TestCustomerRepo_SetBalanceRefrescaLastTransaction(t *testing.T) {
	ctx := context.Background()
	repo := newStore().Customers()
	c := &entity.Customer{Name: "A", Phone: "1"}
	require.NoError(t, repo.Create(ctx, c))

	require.NoError(t, repo.SetBalance(ctx, c.ID, decimal.NewFromInt(250)))
	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(250).Equal(got.Balance))
	assert.Equal(t, fixedNow, got.LastTransaction)
}

func TestTransactionRepo_ListOrdenFechaDescendente(t *testing.T) {
	ctx := context.Background()
	repo := newStore().Transactions()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, day := range []int{3, 1, 2, 2} {
		tx := &entity.Transaction{
			CustomerID: int64(1 + i%2), Type: entity.TransactionCredit,
			Amount: decimal.NewFromInt(1), Date: base.AddDate(0, 0, day),
		}
		require.NoError(t, repo.Create(ctx, tx))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	ids := make([]int64, 0, len(list))
	for _, tx := range list {
		ids = append(ids, tx.ID)
	}
	assert.Equal(t, []int64{1, 4, 3, 2}, ids, "fecha desc; empates por ID desc")

	byCustomer, err := repo.ListByCustomer(ctx, 2)
	require.NoError(t, err)
	require.Len(t, byCustomer, 2)
	assert.Equal(t, int64(4), byCustomer[0].ID)
	assert.Equal(t, int64(2), byCustomer[1].ID)
}

func TestTransactionRepo_ListNoMutaElAlmacen(t *testing.T) {
	ctx := context.Background()
	repo := newStore().Transactions()
	require.NoError(t, repo.Create(ctx, &entity.Transaction{CustomerID: 1, Type: entity.TransactionCredit, Amount: decimal.NewFromInt(5), Date: fixedNow}))

	first, err := repo.List(ctx)
	require.NoError(t, err)
	first[0].Amount = decimal.NewFromInt(1000)

	second, err := repo.List(ctx)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(5).Equal(second[0].Amount))
}

func TestTxRunner_RollbackDeshaceTodo(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	c := &entity.Customer{Name: "A", Phone: "1"}
	require.NoError(t, s.Customers().Create(ctx, c))

	err := s.TxRunner().Run(ctx, func(customers repository.CustomerRepository, txs repository.TransactionRepository) error {
		require.NoError(t, txs.Create(ctx, &entity.Transaction{CustomerID: c.ID, Type: entity.TransactionCredit, Amount: decimal.NewFromInt(10), Date: fixedNow}))
		require.NoError(t, customers.SetBalance(ctx, c.ID, decimal.NewFromInt(10)))
		require.NoError(t, customers.Delete(ctx, c.ID))
		return domain.ErrNotFound
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := s.Customers().GetByID(ctx, c.ID)
	require.NoError(t, err, "el cliente eliminado dentro de la unidad debe restaurarse")
	assert.True(t, got.Balance.IsZero())
	list, err := s.Transactions().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	tx := &entity.Transaction{CustomerID: c.ID, Type: entity.TransactionDebit, Amount: decimal.NewFromInt(1), Date: fixedNow}
	require.NoError(t, s.Transactions().Create(ctx, tx))
	assert.Equal(t, int64(1), tx.ID, "el ID de una transacción revertida nunca fue expuesto")
}

func TestTxRunner_CommitAplicaCambios(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	c := &entity.Customer{Name: "A", Phone: "1"}
	require.NoError(t, s.Customers().Create(ctx, c))

	err := s.TxRunner().Run(ctx, func(customers repository.CustomerRepository, txs repository.TransactionRepository) error {
		if err := txs.Create(ctx, &entity.Transaction{CustomerID: c.ID, Type: entity.TransactionCredit, Amount: decimal.NewFromInt(10), Date: fixedNow}); err != nil {
			return err
		}
		return customers.SetBalance(ctx, c.ID, decimal.NewFromInt(10))
	})
	require.NoError(t, err)

	got, err := s.Customers().GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(10).Equal(got.Balance))
}

func TestBusinessRepo_ValoresPorDefectoYGuardado(t *testing.T) {
	ctx := context.Background()
	repo := newStore().Business()

	b, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultBusinessName, b.Name)

	b.Owner = "Asha"
	require.NoError(t, repo.Save(ctx, b))
	again, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Asha", again.Owner)
}
