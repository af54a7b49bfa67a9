package repository

import (
	"context"

	"github.com/jhoicas/ledgerflow-api/internal/domain/entity"
)

// TransactionRepository define el puerto de persistencia para el log de transacciones.
// Los listados se devuelven ordenados por fecha descendente (más reciente primero).
type TransactionRepository interface {
	// Create asigna el siguiente ID (nunca reutilizado) y agrega la transacción al log.
	Create(ctx context.Context, tx *entity.Transaction) error
	GetByID(ctx context.Context, id int64) (*entity.Transaction, error)
	List(ctx context.Context) ([]*entity.Transaction, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]*entity.Transaction, error)
	Update(ctx context.Context, tx *entity.Transaction) error
	Delete(ctx context.Context, id int64) error
}
