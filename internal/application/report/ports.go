package report

import (
	"context"

	domainreport "github.com/jhoicas/ledgerflow-api/internal/domain/report"
)

// Renderer convierte un documento de reporte en bytes de un formato concreto (pdf).
type Renderer interface {
	Format() string
	ContentType() string
	Render(ctx context.Context, doc *domainreport.Document) ([]byte, error)
}

// Store persiste el archivo generado. Put debe ser atómico: o queda el archivo completo o nada.
type Store interface {
	Put(ctx context.Context, name string, content []byte) (location string, err error)
}
