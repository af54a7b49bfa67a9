package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/ledgerflow-api/internal/domain/entity"
)

// Seed inserta el snapshot conservando sus IDs y avanza las secuencias al mayor ID.
// Filas con ID ya existente se omiten, así re-sembrar al reiniciar no duplica nada.
func Seed(ctx context.Context, pool *pgxpool.Pool, customers []*entity.Customer, transactions []*entity.Transaction, business *entity.Business) error {
	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, c := range customers {
			batch.Queue(`
				INSERT INTO customers (id, name, phone, balance, created_at, last_transaction)
				VALUES ($1, $2, $3, $4, $5, $6)
				ON CONFLICT (id) DO NOTHING`,
				c.ID, c.Name, c.Phone, c.Balance, c.CreatedAt, c.LastTransaction)
		}
		for _, t := range transactions {
			batch.Queue(`
				INSERT INTO transactions (id, customer_id, type, amount, description, date, running_balance)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
				ON CONFLICT (id) DO NOTHING`,
				t.ID, t.CustomerID, string(t.Type), t.Amount, t.Description, t.Date, t.RunningBalance)
		}
		batch.Queue(`SELECT setval(pg_get_serial_sequence('customers', 'id'), (SELECT COALESCE(MAX(id), 0) + 1 FROM customers), false)`)
		batch.Queue(`SELECT setval(pg_get_serial_sequence('transactions', 'id'), (SELECT COALESCE(MAX(id), 0) + 1 FROM transactions), false)`)
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		if business != nil {
			if err := NewBusinessRepository(tx).Save(ctx, business); err != nil {
				return err
			}
		}
		return nil
	})
}
