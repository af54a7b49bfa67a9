package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ledgerflow-api/internal/domain/entity"
	"github.com/jhoicas/ledgerflow-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

const transactionColumns = `id, customer_id, type, amount, description, date, running_balance`

// TransactionRepo implementación de TransactionRepository (usable con pool o tx).
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador.
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create inserta la transacción y asigna su ID.
func (r *TransactionRepo) Create(ctx context.Context, tx *entity.Transaction) error {
	query := `
		INSERT INTO transactions (customer_id, type, amount, description, date, running_balance)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		tx.CustomerID, string(tx.Type), tx.Amount, tx.Description, tx.Date, tx.RunningBalance,
	).Scan(&tx.ID)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una transacción por ID.
func (r *TransactionRepo) GetByID(ctx context.Context, id int64) (*entity.Transaction, error) {
	t, err := scanTransaction(r.q.QueryRow(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id))
	if err != nil {
		return nil, notFoundOr("get transaction", err)
	}
	return t, nil
}

// List todas las transacciones, fecha descendente.
func (r *TransactionRepo) List(ctx context.Context) ([]*entity.Transaction, error) {
	return r.list(ctx, `SELECT `+transactionColumns+` FROM transactions ORDER BY date DESC, id DESC`)
}

// ListByCustomer transacciones del cliente, fecha descendente.
func (r *TransactionRepo) ListByCustomer(ctx context.Context, customerID int64) ([]*entity.Transaction, error) {
	return r.list(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE customer_id = $1 ORDER BY date DESC, id DESC`,
		customerID)
}

// Update reescribe tipo, monto, descripción y fecha. El saldo corriente se conserva.
func (r *TransactionRepo) Update(ctx context.Context, tx *entity.Transaction) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE transactions SET type = $2, amount = $3, description = $4, date = $5 WHERE id = $1`,
		tx.ID, string(tx.Type), tx.Amount, tx.Description, tx.Date,
	)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	return mustAffect(tag)
}

// Delete elimina una transacción por ID.
func (r *TransactionRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return mustAffect(tag)
}

func (r *TransactionRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Transaction, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Transaction, 0)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func scanTransaction(row pgx.Row) (*entity.Transaction, error) {
	var (
		t   entity.Transaction
		typ string
	)
	if err := row.Scan(&t.ID, &t.CustomerID, &typ, &t.Amount, &t.Description, &t.Date, &t.RunningBalance); err != nil {
		return nil, err
	}
	t.Type = entity.TransactionType(typ)
	return &t, nil
}
