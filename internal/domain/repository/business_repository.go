package repository

import (
	"context"

	"github.com/jhoicas/ledgerflow-api/internal/domain/entity"
)

// BusinessRepository persiste los metadatos del negocio (un único registro).
type BusinessRepository interface {
	Get(ctx context.Context) (*entity.Business, error)
	Save(ctx context.Context, business *entity.Business) error
}
