package memory

import (
	"context"

	"github.com/jhoicas/ledgerflow-api/internal/application/ledger"
	"github.com/jhoicas/ledgerflow-api/internal/domain/repository"
)

var _ ledger.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks como unidad atómica sobre el Store.
// Mantiene el lock de escritura durante fn y deshace los cambios si fn falla.
type TxRunner struct {
	s *Store
}

// Run ejecuta fn con repositorios atados a la unidad; Rollback si retorna error o entra en pánico.
func (r *TxRunner) Run(_ context.Context, fn func(
	customerRepo repository.CustomerRepository,
	txRepo repository.TransactionRepository,
) error) (err error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	uow := &unitOfWork{}
	defer func() {
		if p := recover(); p != nil {
			uow.rollback()
			panic(p)
		}
	}()

	if err = fn(&CustomerRepo{s: r.s, uow: uow}, &TransactionRepo{s: r.s, uow: uow}); err != nil {
		uow.rollback()
		return err
	}
	return nil
}
