// Package seed lee el snapshot JSON con el que se siembra el libro de caja al iniciar.
//
// Formato:
//
//	{
//	  "business":     {"name": "...", "owner": "...", "phone": "...", "address": "..."},
//	  "customers":    [{"id": 1, "name": "...", "phone": "...", "balance": "500", "createdAt": "...", "lastTransaction": "..."}],
//	  "transactions": [{"id": 1, "customerId": 1, "type": "credit", "amount": "500", "description": "", "date": "...", "runningBalance": "500"}]
//	}
package seed

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"

	"github.com/jhoicas/ledgerflow-api/internal/domain/entity"
)

// Snapshot contenido del archivo de semilla.
type Snapshot struct {
	Business     *BusinessRecord     `json:"business,omitempty"`
	Customers    []CustomerRecord    `json:"customers"`
	Transactions []TransactionRecord `json:"transactions"`
}

// BusinessRecord metadatos del negocio.
type BusinessRecord struct {
	Name    string `json:"name"`
	Owner   string `json:"owner"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CustomerRecord cliente sembrado.
type CustomerRecord struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Phone           string          `json:"phone"`
	Balance         decimal.Decimal `json:"balance"`
	CreatedAt       time.Time       `json:"createdAt"`
	LastTransaction time.Time       `json:"lastTransaction"`
}

// TransactionRecord transacción sembrada.
type TransactionRecord struct {
	ID             int64           `json:"id"`
	CustomerID     int64           `json:"customerId"`
	Type           string          `json:"type"`
	Amount         decimal.Decimal `json:"amount"`
	Description    string          `json:"description"`
	Date           time.Time       `json:"date"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// LoadFile lee y valida el snapshot desde path.
func LoadFile(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seed: abrir %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode lee y valida un snapshot.
func Decode(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("seed: decodificar: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate revisa IDs, referencias y montos; reporta todos los problemas juntos.
func (s *Snapshot) Validate() error {
	var errs error
	customers := make(map[int64]bool, len(s.Customers))
	for i, c := range s.Customers {
		switch {
		case c.ID <= 0:
			errs = multierr.Append(errs, fmt.Errorf("seed: customers[%d]: id debe ser positivo", i))
		case customers[c.ID]:
			errs = multierr.Append(errs, fmt.Errorf("seed: customers[%d]: id %d duplicado", i, c.ID))
		}
		if c.Name == "" {
			errs = multierr.Append(errs, fmt.Errorf("seed: customers[%d]: name requerido", i))
		}
		customers[c.ID] = true
	}
	txs := make(map[int64]bool, len(s.Transactions))
	for i, t := range s.Transactions {
		switch {
		case t.ID <= 0:
			errs = multierr.Append(errs, fmt.Errorf("seed: transactions[%d]: id debe ser positivo", i))
		case txs[t.ID]:
			errs = multierr.Append(errs, fmt.Errorf("seed: transactions[%d]: id %d duplicado", i, t.ID))
		}
		txs[t.ID] = true
		if !customers[t.CustomerID] {
			errs = multierr.Append(errs, fmt.Errorf("seed: transactions[%d]: cliente %d inexistente", i, t.CustomerID))
		}
		if !entity.TransactionType(t.Type).Valid() {
			errs = multierr.Append(errs, fmt.Errorf("seed: transactions[%d]: tipo %q inválido", i, t.Type))
		}
		if !t.Amount.IsPositive() {
			errs = multierr.Append(errs, fmt.Errorf("seed: transactions[%d]: amount debe ser positivo", i))
		}
	}
	return errs
}

// Entities convierte el snapshot en entidades de dominio.
func (s *Snapshot) Entities() ([]*entity.Customer, []*entity.Transaction, *entity.Business) {
	customers := make([]*entity.Customer, 0, len(s.Customers))
	for _, c := range s.Customers {
		customers = append(customers, &entity.Customer{
			ID:              c.ID,
			Name:            c.Name,
			Phone:           c.Phone,
			Balance:         c.Balance,
			CreatedAt:       c.CreatedAt,
			LastTransaction: c.LastTransaction,
		})
	}
	txs := make([]*entity.Transaction, 0, len(s.Transactions))
	for _, t := range s.Transactions {
		txs = append(txs, &entity.Transaction{
			ID:             t.ID,
			CustomerID:     t.CustomerID,
			Type:           entity.TransactionType(t.Type),
			Amount:         t.Amount,
			Description:    t.Description,
			Date:           t.Date,
			RunningBalance: t.RunningBalance,
		})
	}
	var business *entity.Business
	if s.Business != nil {
		business = &entity.Business{
			Name:    s.Business.Name,
			Owner:   s.Business.Owner,
			Phone:   s.Business.Phone,
			Address: s.Business.Address,
		}
		if business.Name == "" {
			business.Name = entity.DefaultBusinessName
		}
	}
	return customers, txs, business
}
