package memory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ledgerflow-api/internal/domain"
	"github.com/jhoicas/ledgerflow-api/internal/domain/entity"
	"github.com/jhoicas/ledgerflow-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación en memoria de CustomerRepository.
type CustomerRepo struct {
	s   *Store
	uow *unitOfWork
}

// Create asigna el siguiente ID y guarda una copia del cliente.
func (r *CustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	defer r.s.guard(r.uow)()

	prevSeq := r.s.customerSeq
	r.s.customerSeq++
	customer.ID = r.s.customerSeq
	cp := *customer
	r.s.customers[cp.ID] = &cp

	if r.uow != nil {
		r.uow.record(func() {
			delete(r.s.customers, cp.ID)
			r.s.customerSeq = prevSeq
		})
	}
	return nil
}

// GetByID obtiene una copia del cliente.
func (r *CustomerRepo) GetByID(_ context.Context, id int64) (*entity.Customer, error) {
	defer r.s.rguard(r.uow)()

	c, ok := r.s.customers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

// GetForUpdate en memoria equivale a GetByID: la unidad atómica ya tiene el lock de escritura.
func (r *CustomerRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Customer, error) {
	return r.GetByID(ctx, id)
}

// List devuelve copias de todos los clientes ordenados por ID.
func (r *CustomerRepo) List(_ context.Context) ([]*entity.Customer, error) {
	defer r.s.rguard(r.uow)()

	list := make([]*entity.Customer, 0, len(r.s.customers))
	for _, c := range r.s.customers {
		cp := *c
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// Update reemplaza nombre y teléfono. Balance y fechas solo cambian vía SetBalance.
func (r *CustomerRepo) Update(_ context.Context, customer *entity.Customer) error {
	defer r.s.guard(r.uow)()

	c, ok := r.s.customers[customer.ID]
	if !ok {
		return domain.ErrNotFound
	}
	prev := *c
	c.Name = customer.Name
	c.Phone = customer.Phone

	if r.uow != nil {
		r.uow.record(func() { *c = prev })
	}
	return nil
}

// Delete elimina el cliente. No borra sus transacciones.
func (r *CustomerRepo) Delete(_ context.Context, id int64) error {
	defer r.s.guard(r.uow)()

	c, ok := r.s.customers[id]
	if !ok {
		return domain.ErrNotFound
	}
	delete(r.s.customers, id)

	if r.uow != nil {
		r.uow.record(func() { r.s.customers[id] = c })
	}
	return nil
}

// SetBalance fija el saldo y refresca LastTransaction.
func (r *CustomerRepo) SetBalance(_ context.Context, id int64, balance decimal.Decimal) error {
	defer r.s.guard(r.uow)()

	c, ok := r.s.customers[id]
	if !ok {
		return domain.ErrNotFound
	}
	prev := *c
	c.Balance = balance
	c.LastTransaction = r.s.now()

	if r.uow != nil {
		r.uow.record(func() { *c = prev })
	}
	return nil
}
