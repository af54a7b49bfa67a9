package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/ledgerflow-api/internal/application/dto"
	"github.com/jhoicas/ledgerflow-api/internal/domain"
	"github.com/jhoicas/ledgerflow-api/internal/domain/entity"
	domainledger "github.com/jhoicas/ledgerflow-api/internal/domain/ledger"
	"github.com/jhoicas/ledgerflow-api/internal/domain/repository"
	"github.com/jhoicas/ledgerflow-api/pkg/logger"
)

// DefaultRecentLimit cantidad de transacciones recientes cuando no se indica límite.
const DefaultRecentLimit = 10

// TransactionUseCase registra transacciones y mantiene el saldo del cliente consistente
// con su historial. Create es la única vía que modifica el saldo de un cliente.
type TransactionUseCase struct {
	txRunner TxRunner
	txRepo   repository.TransactionRepository
	locks    *KeyedMutex
	log      *logger.Logger
	now      func() time.Time
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(
	txRunner TxRunner,
	txRepo repository.TransactionRepository,
	locks *KeyedMutex,
	log *logger.Logger,
) *TransactionUseCase {
	return &TransactionUseCase{
		txRunner: txRunner,
		txRepo:   txRepo,
		locks:    locks,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Create registra la transacción y actualiza el saldo del cliente.
//
// Lectura del saldo, cálculo, alta de la transacción y escritura del saldo ocurren
// bajo el lock del cliente y dentro de una unidad atómica: dos altas concurrentes para
// el mismo cliente nunca calculan sobre el mismo saldo, y si algo falla no queda nada aplicado.
func (uc *TransactionUseCase) Create(ctx context.Context, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if in.CustomerID <= 0 {
		return nil, domain.NewValidationError("customer_id", "requerido")
	}
	if in.Amount == nil {
		return nil, domain.NewValidationError("amount", "requerido")
	}
	if !in.Amount.IsPositive() {
		return nil, domain.NewValidationError("amount", "debe ser mayor que cero")
	}
	txType := entity.TransactionType(strings.ToLower(strings.TrimSpace(in.Type)))
	if !txType.Valid() {
		return nil, domain.NewValidationError("type", "debe ser credit o debit")
	}

	date := uc.now()
	if in.Date != nil && !in.Date.IsZero() {
		date = *in.Date
	}

	unlock := uc.locks.Lock(in.CustomerID)
	defer unlock()

	var created *entity.Transaction
	err := uc.txRunner.Run(ctx, func(
		customerRepo repository.CustomerRepository,
		txRepo repository.TransactionRepository,
	) error {
		customer, err := customerRepo.GetForUpdate(ctx, in.CustomerID)
		if err != nil {
			return err
		}
		newBalance := domainledger.Apply(customer.Balance, txType, *in.Amount)

		tx := &entity.Transaction{
			CustomerID:     in.CustomerID,
			Type:           txType,
			Amount:         *in.Amount,
			Description:    in.Description,
			Date:           date,
			RunningBalance: newBalance,
		}
		if err := txRepo.Create(ctx, tx); err != nil {
			return err
		}
		if err := customerRepo.SetBalance(ctx, in.CustomerID, newBalance); err != nil {
			return err
		}
		created = tx
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Debug().
		Int64("customer_id", created.CustomerID).
		Int64("transaction_id", created.ID).
		Str("type", string(created.Type)).
		Str("amount", created.Amount.String()).
		Str("running_balance", created.RunningBalance.String()).
		Msg("transacción registrada")

	return toTransactionResponse(created), nil
}

// Get obtiene una transacción; domain.ErrNotFound si no existe.
func (uc *TransactionUseCase) Get(ctx context.Context, id int64) (*dto.TransactionResponse, error) {
	t, err := uc.txRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toTransactionResponse(t), nil
}

// List todas las transacciones, más recientes primero.
func (uc *TransactionUseCase) List(ctx context.Context) ([]*dto.TransactionResponse, error) {
	list, err := uc.txRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toTransactionResponses(list), nil
}

// ListForCustomer transacciones del cliente, más recientes primero.
func (uc *TransactionUseCase) ListForCustomer(ctx context.Context, customerID int64) ([]*dto.TransactionResponse, error) {
	list, err := uc.txRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return toTransactionResponses(list), nil
}

// Recent las limit transacciones más recientes de todos los clientes.
func (uc *TransactionUseCase) Recent(ctx context.Context, limit int) ([]*dto.TransactionResponse, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	list, err := uc.txRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(list) > limit {
		list = list[:limit]
	}
	return toTransactionResponses(list), nil
}

// Update modifica el registro directamente.
// No recalcula RunningBalance de transacciones posteriores ni el saldo del cliente.
func (uc *TransactionUseCase) Update(ctx context.Context, id int64, in dto.UpdateTransactionRequest) (*dto.TransactionResponse, error) {
	t, err := uc.txRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Type != nil {
		typ := entity.TransactionType(strings.ToLower(strings.TrimSpace(*in.Type)))
		if !typ.Valid() {
			return nil, domain.NewValidationError("type", "debe ser credit o debit")
		}
		t.Type = typ
	}
	if in.Amount != nil {
		if !in.Amount.IsPositive() {
			return nil, domain.NewValidationError("amount", "debe ser mayor que cero")
		}
		t.Amount = *in.Amount
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Date != nil {
		if in.Date.IsZero() {
			return nil, domain.NewValidationError("date", "inválida")
		}
		t.Date = *in.Date
	}
	if err := uc.txRepo.Update(ctx, t); err != nil {
		return nil, err
	}
	return toTransactionResponse(t), nil
}

// Delete elimina la transacción. No recalcula saldos.
func (uc *TransactionUseCase) Delete(ctx context.Context, id int64) error {
	return uc.txRepo.Delete(ctx, id)
}

func toTransactionResponse(t *entity.Transaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:             t.ID,
		CustomerID:     t.CustomerID,
		Type:           string(t.Type),
		Amount:         t.Amount,
		Description:    t.Description,
		Date:           t.Date,
		RunningBalance: t.RunningBalance,
	}
}

func toTransactionResponses(list []*entity.Transaction) []*dto.TransactionResponse {
	out := make([]*dto.TransactionResponse, 0, len(list))
	for _, t := range list {
		out = append(out, toTransactionResponse(t))
	}
	return out
}
