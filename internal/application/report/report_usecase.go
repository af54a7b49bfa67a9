// Package report orquesta la generación de reportes: carga el snapshot,
// arma el documento y lo entrega al renderer del formato pedido.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/ledgerflow-api/internal/application/dto"
	"github.com/jhoicas/ledgerflow-api/internal/domain"
	"github.com/jhoicas/ledgerflow-api/internal/domain/entity"
	domainreport "github.com/jhoicas/ledgerflow-api/internal/domain/report"
	"github.com/jhoicas/ledgerflow-api/internal/domain/repository"
	"github.com/jhoicas/ledgerflow-api/pkg/logger"
)

// DefaultFormat formato cuando la petición no indica uno.
const DefaultFormat = "pdf"

// Result documento generado.
type Result struct {
	Handle      string
	FileName    string
	Format      string
	ContentType string
	Content     []byte
	Location    string // vacío si no hay Store configurado
	Document    *domainreport.Document
}

// ReportUseCase genera reportes sobre el estado actual del libro.
type ReportUseCase struct {
	customerRepo repository.CustomerRepository
	txRepo       repository.TransactionRepository
	renderers    map[string]Renderer
	store        Store
	log          *logger.Logger
	now          func() time.Time
}

// Option configura el caso de uso.
type Option func(*ReportUseCase)

// WithStore guarda cada reporte generado.
func WithStore(s Store) Option {
	return func(uc *ReportUseCase) { uc.store = s }
}

// WithClock reemplaza el reloj (tests).
func WithClock(now func() time.Time) Option {
	return func(uc *ReportUseCase) { uc.now = now }
}

// NewReportUseCase construye el caso de uso con los renderers disponibles.
func NewReportUseCase(
	customerRepo repository.CustomerRepository,
	txRepo repository.TransactionRepository,
	renderers []Renderer,
	log *logger.Logger,
	opts ...Option,
) *ReportUseCase {
	uc := &ReportUseCase{
		customerRepo: customerRepo,
		txRepo:       txRepo,
		renderers:    make(map[string]Renderer, len(renderers)),
		log:          log,
		now:          func() time.Time { return time.Now().UTC() },
	}
	for _, r := range renderers {
		uc.renderers[strings.ToLower(r.Format())] = r
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Formats formatos registrados.
func (uc *ReportUseCase) Formats() []string {
	out := make([]string, 0, len(uc.renderers))
	for f := range uc.renderers {
		out = append(out, f)
	}
	return out
}

// Generate carga clientes y transacciones en paralelo y genera el reporte.
func (uc *ReportUseCase) Generate(ctx context.Context, in dto.GenerateReportRequest) (*Result, error) {
	if _, err := uc.renderer(in.Format); err != nil {
		return nil, err
	}

	var (
		customers    []*entity.Customer
		transactions []*entity.Transaction
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := uc.customerRepo.List(gctx)
		if err != nil {
			return fmt.Errorf("report: listar clientes: %w", err)
		}
		customers = list
		return nil
	})
	g.Go(func() error {
		list, err := uc.txRepo.List(gctx)
		if err != nil {
			return fmt.Errorf("report: listar transacciones: %w", err)
		}
		transactions = list
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return uc.GenerateFrom(ctx, in, customers, transactions)
}

// GenerateFrom genera el reporte sobre un snapshot provisto por el llamador.
// Las transacciones se muestran en el orden recibido.
func (uc *ReportUseCase) GenerateFrom(
	ctx context.Context,
	in dto.GenerateReportRequest,
	customers []*entity.Customer,
	transactions []*entity.Transaction,
) (*Result, error) {
	renderer, err := uc.renderer(in.Format)
	if err != nil {
		return nil, err
	}
	kind, err := domainreport.ParseKind(in.Kind)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	start, end, err := in.Period(now)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := domainreport.Build(domainreport.Request{
		Kind:         kind,
		StartDate:    start,
		EndDate:      end,
		Customers:    customers,
		Transactions: transactions,
	}, now)
	if err != nil {
		return nil, err
	}

	content, err := renderer.Render(ctx, doc)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("report: renderizar %s: %w", renderer.Format(), err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{
		Handle:      uuid.NewString(),
		FileName:    domainreport.FileName(kind, renderer.Format(), now),
		Format:      renderer.Format(),
		ContentType: renderer.ContentType(),
		Content:     content,
		Document:    doc,
	}
	if uc.store != nil {
		loc, err := uc.store.Put(ctx, res.FileName, content)
		if err != nil {
			return nil, fmt.Errorf("report: guardar %s: %w", res.FileName, err)
		}
		res.Location = loc
	}

	uc.log.Info().
		Str("handle", res.Handle).
		Str("kind", string(kind)).
		Str("file", res.FileName).
		Int("bytes", len(content)).
		Msg("reporte generado")
	return res, nil
}

func (uc *ReportUseCase) renderer(format string) (Renderer, error) {
	f := strings.ToLower(strings.TrimSpace(format))
	if f == "" {
		f = DefaultFormat
	}
	r, ok := uc.renderers[f]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
	return r, nil
}
