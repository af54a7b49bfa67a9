package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/ledgerflow-api/internal/application/dto"
	"github.com/jhoicas/ledgerflow-api/internal/bootstrap"
)

func newReportCmd(e *env) *cobra.Command {
	var req dto.GenerateReportRequest
	var out string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Genera un reporte (outstanding, summary o transactions) en disco",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := *e.cfg
			if out != "" {
				cfg.Report.OutputDir = out
			}
			if cfg.Report.OutputDir == "" {
				cfg.Report.OutputDir = "."
			}
			svc, err := bootstrap.NewServices(e.storage, &cfg, e.log)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Report.Timeout())
			defer cancel()

			res, err := svc.Reports.Generate(ctx, req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d bytes) %s\n", res.Location, len(res.Content), res.Handle)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&req.Kind, "kind", "summary", "tipo de reporte: outstanding | summary | transactions")
	f.StringVar(&req.StartDate, "from", "", "fecha inicial YYYY-MM-DD (vacío = sin límite)")
	f.StringVar(&req.EndDate, "to", "", "fecha final YYYY-MM-DD (vacío = ahora)")
	f.StringVar(&req.Format, "format", "pdf", "formato de salida")
	f.StringVarP(&out, "out", "o", "", "directorio de salida (por defecto REPORT_OUTPUT_DIR o .)")
	return cmd
}
