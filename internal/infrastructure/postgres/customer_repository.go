package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ledgerflow-api/internal/domain/entity"
	"github.com/jhoicas/ledgerflow-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, name, phone, balance, created_at, last_transaction`

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente y asigna su ID.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (name, phone, balance, created_at, last_transaction)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		customer.Name, customer.Phone, customer.Balance, customer.CreatedAt, customer.LastTransaction,
	).Scan(&customer.ID)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	c, err := scanCustomer(r.q.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id))
	if err != nil {
		return nil, notFoundOr("get customer", err)
	}
	return c, nil
}

// GetForUpdate obtiene el cliente bloqueando la fila (SELECT ... FOR UPDATE). Usar dentro de TxRunner.
func (r *CustomerRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Customer, error) {
	c, err := scanCustomer(r.q.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, notFoundOr("get customer for update", err)
	}
	return c, nil
}

// List lista todos los clientes en orden de ID.
func (r *CustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	rows, err := r.q.Query(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update actualiza nombre y teléfono. No toca el saldo.
func (r *CustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	tag, err := r.q.Exec(ctx, `UPDATE customers SET name = $2, phone = $3 WHERE id = $1`,
		customer.ID, customer.Name, customer.Phone,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return mustAffect(tag)
}

// Delete elimina un cliente por ID. Sus transacciones se conservan.
func (r *CustomerRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return mustAffect(tag)
}

// SetBalance escribe el saldo y refresca last_transaction.
func (r *CustomerRepo) SetBalance(ctx context.Context, id int64, balance decimal.Decimal) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE customers SET balance = $2, last_transaction = NOW() WHERE id = $1`, id, balance)
	if err != nil {
		return fmt.Errorf("set customer balance: %w", err)
	}
	return mustAffect(tag)
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	if err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.Balance, &c.CreatedAt, &c.LastTransaction); err != nil {
		return nil, err
	}
	return &c, nil
}
