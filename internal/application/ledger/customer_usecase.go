// Package ledger contiene los casos de uso del libro de caja: clientes,
// registro de transacciones y datos del negocio.
package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ledgerflow-api/internal/application/dto"
	"github.com/jhoicas/ledgerflow-api/internal/domain"
	"github.com/jhoicas/ledgerflow-api/internal/domain/entity"
	"github.com/jhoicas/ledgerflow-api/internal/domain/repository"
)

// CustomerUseCase casos de uso de clientes (CRUD y búsqueda).
// El saldo nunca se edita aquí: solo cambia vía TransactionUseCase.
type CustomerUseCase struct {
	repo  repository.CustomerRepository
	locks *KeyedMutex
	now   func() time.Time
}

// NewCustomerUseCase construye el caso de uso. locks debe ser el mismo que usa TransactionUseCase.
func NewCustomerUseCase(repo repository.CustomerRepository, locks *KeyedMutex) *CustomerUseCase {
	return &CustomerUseCase{
		repo:  repo,
		locks: locks,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Create crea un cliente con saldo cero.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)
	if name == "" {
		return nil, domain.NewValidationError("name", "requerido")
	}
	if phone == "" {
		return nil, domain.NewValidationError("phone", "requerido")
	}
	now := uc.now()
	customer := &entity.Customer{
		Name:            name,
		Phone:           phone,
		Balance:         decimal.Zero,
		CreatedAt:       now,
		LastTransaction: now,
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Get obtiene un cliente; domain.ErrNotFound si no existe.
func (uc *CustomerUseCase) Get(ctx context.Context, id int64) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// List lista todos los clientes.
func (uc *CustomerUseCase) List(ctx context.Context) ([]*dto.CustomerResponse, error) {
	return uc.Search(ctx, "")
}

// Search filtra por nombre (sin distinguir mayúsculas) o teléfono. Query vacío lista todos.
func (uc *CustomerUseCase) Search(ctx context.Context, query string) ([]*dto.CustomerResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.TrimSpace(query)
	lq := strings.ToLower(q)
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		if q != "" && !strings.Contains(strings.ToLower(c.Name), lq) && !strings.Contains(c.Phone, q) {
			continue
		}
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Update mezcla nombre y teléfono en el cliente existente.
func (uc *CustomerUseCase) Update(ctx context.Context, id int64, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if c.Name = strings.TrimSpace(*in.Name); c.Name == "" {
			return nil, domain.NewValidationError("name", "no puede quedar vacío")
		}
	}
	if in.Phone != nil {
		if c.Phone = strings.TrimSpace(*in.Phone); c.Phone == "" {
			return nil, domain.NewValidationError("phone", "no puede quedar vacío")
		}
	}
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// Delete elimina el cliente sin borrar sus transacciones.
// Toma el lock del cliente para no intercalarse con un registro de transacción en curso.
func (uc *CustomerUseCase) Delete(ctx context.Context, id int64) error {
	unlock := uc.locks.Lock(id)
	defer unlock()
	return uc.repo.Delete(ctx, id)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:              c.ID,
		Name:            c.Name,
		Phone:           c.Phone,
		Balance:         c.Balance,
		CreatedAt:       c.CreatedAt,
		LastTransaction: c.LastTransaction,
	}
}
