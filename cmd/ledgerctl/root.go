package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jhoicas/ledgerflow-api/internal/bootstrap"
	"github.com/jhoicas/ledgerflow-api/pkg/config"
	"github.com/jhoicas/ledgerflow-api/pkg/logger"
)

// env estado compartido por los subcomandos, abierto en PersistentPreRunE.
type env struct {
	seedPath string
	cfg      *config.Config
	log      *logger.Logger
	storage  *bootstrap.Storage
}

func newRootCmd() *cobra.Command {
	e := &env{}
	root := &cobra.Command{
		Use:           "ledgerctl",
		Short:         "ledgerctl administra el libro de caja de LedgerFlow",
		Long:          `ledgerctl siembra el almacenamiento configurado, genera reportes y muestra los totales del negocio.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.open(cmd.Context())
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if e.storage != nil {
				e.storage.Close()
			}
		},
	}
	root.PersistentFlags().StringVar(&e.seedPath, "seed", "", "snapshot JSON a cargar antes del comando (por defecto LEDGER_SEED_PATH)")

	root.AddCommand(newSeedCmd(e), newReportCmd(e), newTotalsCmd(e))
	return root
}

func (e *env) open(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	e.cfg = cfg
	e.log = logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	if e.storage, err = bootstrap.OpenStorage(ctx, cfg, e.log); err != nil {
		return err
	}
	path := e.seedPath
	if path == "" {
		path = cfg.Ledger.SeedPath
	}
	if path != "" {
		if _, err := e.storage.SeedFile(ctx, path); err != nil {
			return err
		}
	}
	return nil
}
