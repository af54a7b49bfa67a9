// Package memory implementa los repositorios del libro de caja en memoria.
// Es el almacenamiento por defecto: se siembra desde un snapshot al iniciar y los
// cambios viven solo durante el proceso.
package memory

import (
	"sync"
	"time"

	"github.com/jhoicas/ledgerflow-api/internal/domain/entity"
)

// Store colecciones compartidas de clientes, transacciones y metadatos del negocio.
// Toda mutación se aplica completa bajo el lock de escritura; las lecturas devuelven copias.
type Store struct {
	mu sync.RWMutex

	customers   map[int64]*entity.Customer
	customerSeq int64 // mayor ID de cliente asignado alguna vez

	transactions   map[int64]*entity.Transaction
	transactionSeq int64 // mayor ID de transacción asignado alguna vez

	business entity.Business

	now func() time.Time
}

// Option configura el Store.
type Option func(*Store)

// WithClock reemplaza el reloj (útil en tests).
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New construye un Store vacío.
func New(opts ...Option) *Store {
	s := &Store{
		customers:    make(map[int64]*entity.Customer),
		transactions: make(map[int64]*entity.Transaction),
		business:     entity.Business{Name: entity.DefaultBusinessName},
		now:          func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reemplaza el contenido del Store por el snapshot indicado.
// Los contadores de ID arrancan en el mayor ID sembrado.
func (s *Store) Load(customers []*entity.Customer, transactions []*entity.Transaction, business *entity.Business) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.customers = make(map[int64]*entity.Customer, len(customers))
	s.customerSeq = 0
	for _, c := range customers {
		cp := *c
		s.customers[cp.ID] = &cp
		if cp.ID > s.customerSeq {
			s.customerSeq = cp.ID
		}
	}
	s.transactions = make(map[int64]*entity.Transaction, len(transactions))
	s.transactionSeq = 0
	for _, t := range transactions {
		cp := *t
		s.transactions[cp.ID] = &cp
		if cp.ID > s.transactionSeq {
			s.transactionSeq = cp.ID
		}
	}
	if business != nil {
		s.business = *business
	}
}

// Customers repositorio de clientes sobre este Store.
func (s *Store) Customers() *CustomerRepo { return &CustomerRepo{s: s} }

// Transactions repositorio de transacciones sobre este Store.
func (s *Store) Transactions() *TransactionRepo { return &TransactionRepo{s: s} }

// Business repositorio de metadatos del negocio.
func (s *Store) Business() *BusinessRepo { return &BusinessRepo{s: s} }

// TxRunner unidades atómicas sobre este Store.
func (s *Store) TxRunner() *TxRunner { return &TxRunner{s: s} }

// unitOfWork registro de deshacer de una unidad atómica en curso.
// Cuando un repositorio tiene uow, el lock ya lo tiene TxRunner.Run.
type unitOfWork struct {
	undo []func()
}

func (u *unitOfWork) record(fn func()) { u.undo = append(u.undo, fn) }

func (u *unitOfWork) rollback() {
	for i := len(u.undo) - 1; i >= 0; i-- {
		u.undo[i]()
	}
	u.undo = nil
}

// guard toma el lock de escritura salvo que se esté dentro de una unidad atómica.
func (s *Store) guard(uow *unitOfWork) func() {
	if uow != nil {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// rguard toma el lock de lectura salvo que se esté dentro de una unidad atómica.
func (s *Store) rguard(uow *unitOfWork) func() {
	if uow != nil {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}
