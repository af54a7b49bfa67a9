package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ledgerflow-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
// Las lecturas devuelven copias: mutarlas no afecta al almacén.
type CustomerRepository interface {
	// Create asigna el siguiente ID (nunca reutilizado) y persiste el cliente.
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id int64) (*entity.Customer, error)
	// GetForUpdate obtiene el cliente bloqueándolo hasta el fin de la unidad de trabajo.
	GetForUpdate(ctx context.Context, id int64) (*entity.Customer, error)
	List(ctx context.Context) ([]*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id int64) error
	// SetBalance es privilegiado: solo lo usa el registro de transacciones.
	// Actualiza Balance y LastTransaction; devuelve domain.ErrNotFound si el cliente no existe.
	SetBalance(ctx context.Context, id int64, balance decimal.Decimal) error
}
