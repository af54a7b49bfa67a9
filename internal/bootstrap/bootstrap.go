// Package bootstrap arma el almacenamiento y los casos de uso a partir de la configuración.
// Lo comparten el servidor HTTP (cmd/api) y la CLI (cmd/ledgerctl).
package bootstrap

import (
	"context"
	"fmt"

	"golang.org/x/text/language"

	"github.com/jhoicas/ledgerflow-api/internal/application/ledger"
	"github.com/jhoicas/ledgerflow-api/internal/application/report"
	"github.com/jhoicas/ledgerflow-api/internal/domain/repository"
	"github.com/jhoicas/ledgerflow-api/internal/infrastructure/format"
	"github.com/jhoicas/ledgerflow-api/internal/infrastructure/memory"
	"github.com/jhoicas/ledgerflow-api/internal/infrastructure/pdf"
	"github.com/jhoicas/ledgerflow-api/internal/infrastructure/postgres"
	"github.com/jhoicas/ledgerflow-api/internal/infrastructure/seed"
	"github.com/jhoicas/ledgerflow-api/internal/infrastructure/storage"
	"github.com/jhoicas/ledgerflow-api/pkg/config"
	"github.com/jhoicas/ledgerflow-api/pkg/logger"
)

// Storage repositorios del backend configurado (memory o postgres).
type Storage struct {
	Backend      string
	Customers    repository.CustomerRepository
	Transactions repository.TransactionRepository
	Business     repository.BusinessRepository
	TxRunner     ledger.TxRunner

	load  func(ctx context.Context, snap *seed.Snapshot) error
	close func()
}

// OpenStorage abre el backend indicado por LEDGER_STORAGE. En postgres asegura el esquema.
func OpenStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Storage, error) {
	switch cfg.Ledger.Storage {
	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("esquema: %w", err)
		}
		log.Info().Str("storage", config.StoragePostgres).Msg("almacenamiento listo")
		return &Storage{
			Backend:      config.StoragePostgres,
			Customers:    postgres.NewCustomerRepository(pool),
			Transactions: postgres.NewTransactionRepository(pool),
			Business:     postgres.NewBusinessRepository(pool),
			TxRunner:     postgres.NewTxRunner(pool),
			load: func(ctx context.Context, snap *seed.Snapshot) error {
				customers, txs, business := snap.Entities()
				return postgres.Seed(ctx, pool, customers, txs, business)
			},
			close: pool.Close,
		}, nil

	case config.StorageMemory, "":
		store := memory.New()
		log.Info().Str("storage", config.StorageMemory).Msg("almacenamiento listo (los datos no sobreviven al reinicio)")
		return &Storage{
			Backend:      config.StorageMemory,
			Customers:    store.Customers(),
			Transactions: store.Transactions(),
			Business:     store.Business(),
			TxRunner:     store.TxRunner(),
			load: func(_ context.Context, snap *seed.Snapshot) error {
				store.Load(snap.Entities())
				return nil
			},
			close: func() {},
		}, nil
	}
	return nil, fmt.Errorf("LEDGER_STORAGE %q no soportado", cfg.Ledger.Storage)
}

// Seed carga el snapshot en el backend.
func (s *Storage) Seed(ctx context.Context, snap *seed.Snapshot) error {
	return s.load(ctx, snap)
}

// SeedFile lee, valida y carga el snapshot en path.
func (s *Storage) SeedFile(ctx context.Context, path string) (*seed.Snapshot, error) {
	snap, err := seed.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err := s.Seed(ctx, snap); err != nil {
		return nil, fmt.Errorf("seed %s: %w", path, err)
	}
	return snap, nil
}

// Close libera el pool si lo hay.
func (s *Storage) Close() { s.close() }

// Services casos de uso sobre un Storage.
type Services struct {
	Customers    *ledger.CustomerUseCase
	Transactions *ledger.TransactionUseCase
	Business     *ledger.BusinessUseCase
	Reports      *report.ReportUseCase
}

// NewServices construye los casos de uso. Clientes y transacciones comparten el mismo lock por cliente.
func NewServices(st *Storage, cfg *config.Config, log *logger.Logger) (*Services, error) {
	locks := ledger.NewKeyedMutex()

	formatter, err := format.New(language.English, cfg.Report.Currency)
	if err != nil {
		return nil, err
	}
	renderers := []report.Renderer{pdf.NewMarotoReportRenderer(formatter, cfg.App.Name)}

	var opts []report.Option
	if cfg.Report.OutputDir != "" {
		files, err := storage.NewFileStore(cfg.Report.OutputDir)
		if err != nil {
			return nil, err
		}
		opts = append(opts, report.WithStore(files))
	}

	return &Services{
		Customers:    ledger.NewCustomerUseCase(st.Customers, locks),
		Transactions: ledger.NewTransactionUseCase(st.TxRunner, st.Transactions, locks, log.Component("ledger")),
		Business:     ledger.NewBusinessUseCase(st.Business, st.Customers),
		Reports:      report.NewReportUseCase(st.Customers, st.Transactions, renderers, log.Component("report"), opts...),
	}, nil
}
