package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/jhoicas/ledgerflow-api/internal/bootstrap"
	"github.com/jhoicas/ledgerflow-api/internal/infrastructure/format"
)

func newTotalsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "totals",
		Short: "Muestra totales por cobrar, por pagar y saldo neto",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := bootstrap.NewServices(e.storage, e.cfg, e.log)
			if err != nil {
				return err
			}
			data, err := svc.Business.GetBusinessData(cmd.Context())
			if err != nil {
				return err
			}
			f, err := format.New(language.English, e.cfg.Report.Currency)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "Business\t%s\n", data.Name)
			fmt.Fprintf(w, "Total Customers\t%s\n", f.Count(data.CustomerCount))
			fmt.Fprintf(w, "Outstanding Customers\t%s\n", f.Count(data.OutstandingCount))
			fmt.Fprintf(w, "Total to Receive\t%s\n", f.Money(data.TotalToReceive))
			fmt.Fprintf(w, "Total to Pay\t%s\n", f.Money(data.TotalToPay))
			fmt.Fprintf(w, "Net Balance\t%s (%s)\n", f.Money(data.NetBalance.Abs()), data.NetStatus)
			return w.Flush()
		},
	}
}
