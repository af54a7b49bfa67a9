package ledger

import (
	"context"

	"github.com/jhoicas/ledgerflow-api/internal/domain/repository"
)

// TxRunner ejecuta una función como unidad atómica, pasando repositorios atados a ella.
// Si fn retorna error, ningún efecto de fn queda aplicado (Rollback).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		customerRepo repository.CustomerRepository,
		txRepo repository.TransactionRepository,
	) error) error
}
