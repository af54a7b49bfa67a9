package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/ledgerflow-api/internal/domain"
	"github.com/jhoicas/ledgerflow-api/internal/domain/entity"
	"github.com/jhoicas/ledgerflow-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación en memoria de TransactionRepository.
type TransactionRepo struct {
	s   *Store
	uow *unitOfWork
}

// Create asigna el siguiente ID y agrega una copia al log.
func (r *TransactionRepo) Create(_ context.Context, tx *entity.Transaction) error {
	defer r.s.guard(r.uow)()

	prevSeq := r.s.transactionSeq
	r.s.transactionSeq++
	tx.ID = r.s.transactionSeq
	cp := *tx
	r.s.transactions[cp.ID] = &cp

	if r.uow != nil {
		r.uow.record(func() {
			delete(r.s.transactions, cp.ID)
			r.s.transactionSeq = prevSeq
		})
	}
	return nil
}

// GetByID obtiene una copia de la transacción.
func (r *TransactionRepo) GetByID(_ context.Context, id int64) (*entity.Transaction, error) {
	defer r.s.rguard(r.uow)()

	t, ok := r.s.transactions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

// List devuelve todas las transacciones, más recientes primero.
func (r *TransactionRepo) List(_ context.Context) ([]*entity.Transaction, error) {
	defer r.s.rguard(r.uow)()
	return r.collect(func(*entity.Transaction) bool { return true }), nil
}

// ListByCustomer devuelve las transacciones del cliente, más recientes primero.
func (r *TransactionRepo) ListByCustomer(_ context.Context, customerID int64) ([]*entity.Transaction, error) {
	defer r.s.rguard(r.uow)()
	return r.collect(func(t *entity.Transaction) bool { return t.CustomerID == customerID }), nil
}

// Update reemplaza el registro tal cual. No recalcula saldos corrientes posteriores.
func (r *TransactionRepo) Update(_ context.Context, tx *entity.Transaction) error {
	defer r.s.guard(r.uow)()

	t, ok := r.s.transactions[tx.ID]
	if !ok {
		return domain.ErrNotFound
	}
	prev := *t
	*t = *tx

	if r.uow != nil {
		r.uow.record(func() { *t = prev })
	}
	return nil
}

// Delete elimina la transacción. No recalcula saldos.
func (r *TransactionRepo) Delete(_ context.Context, id int64) error {
	defer r.s.guard(r.uow)()

	t, ok := r.s.transactions[id]
	if !ok {
		return domain.ErrNotFound
	}
	delete(r.s.transactions, id)

	if r.uow != nil {
		r.uow.record(func() { r.s.transactions[id] = t })
	}
	return nil
}

// collect copia las transacciones que cumplen keep, ordenadas por fecha desc (empate: ID desc).
func (r *TransactionRepo) collect(keep func(*entity.Transaction) bool) []*entity.Transaction {
	list := make([]*entity.Transaction, 0, len(r.s.transactions))
	for _, t := range r.s.transactions {
		if !keep(t) {
			continue
		}
		cp := *t
		list = append(list, &cp)
	}
	sortByDateDesc(list)
	return list
}

func sortByDateDesc(list []*entity.Transaction) {
	sort.Slice(list, func(i, j int) bool {
		if !list[i].Date.Equal(list[j].Date) {
			return list[i].Date.After(list[j].Date)
		}
		return list[i].ID > list[j].ID
	})
}
