package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ledgerflow-api/internal/domain/entity"
	"github.com/jhoicas/ledgerflow-api/internal/domain/repository"
)

var _ repository.BusinessRepository = (*BusinessRepo)(nil)

// BusinessRepo fila única de business_settings.
type BusinessRepo struct {
	q Querier
}

// NewBusinessRepository construye el adaptador.
func NewBusinessRepository(q Querier) *BusinessRepo {
	return &BusinessRepo{q: q}
}

// Get devuelve los metadatos; si aún no hay fila, los valores por defecto.
func (r *BusinessRepo) Get(ctx context.Context) (*entity.Business, error) {
	var b entity.Business
	err := r.q.QueryRow(ctx, `SELECT name, owner, phone, address FROM business_settings WHERE id = 1`).
		Scan(&b.Name, &b.Owner, &b.Phone, &b.Address)
	if errors.Is(err, pgx.ErrNoRows) {
		return &entity.Business{Name: entity.DefaultBusinessName}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get business: %w", err)
	}
	return &b, nil
}

// Save inserta o reemplaza los metadatos.
func (r *BusinessRepo) Save(ctx context.Context, b *entity.Business) error {
	query := `
		INSERT INTO business_settings (id, name, owner, phone, address)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, owner = EXCLUDED.owner, phone = EXCLUDED.phone, address = EXCLUDED.address`
	if _, err := r.q.Exec(ctx, query, b.Name, b.Owner, b.Phone, b.Address); err != nil {
		return fmt.Errorf("save business: %w", err)
	}
	return nil
}
