package memory

import (
	"context"

	"github.com/jhoicas/ledgerflow-api/internal/domain/entity"
	"github.com/jhoicas/ledgerflow-api/internal/domain/repository"
)

var _ repository.BusinessRepository = (*BusinessRepo)(nil)

// BusinessRepo metadatos del negocio en memoria.
type BusinessRepo struct {
	s *Store
}

// Get devuelve una copia de los metadatos.
func (r *BusinessRepo) Get(_ context.Context) (*entity.Business, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	b := r.s.business
	return &b, nil
}

// Save reemplaza los metadatos.
func (r *BusinessRepo) Save(_ context.Context, business *entity.Business) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.business = *business
	return nil
}
