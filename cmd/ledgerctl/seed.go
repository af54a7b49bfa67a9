package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSeedCmd(e *env) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Carga un snapshot JSON en el almacenamiento configurado",
		Long: `Valida el snapshot y lo carga. En postgres los IDs se conservan y las filas existentes se omiten;
en memoria solo sirve para validar el archivo, los datos no persisten.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := e.storage.SeedFile(cmd.Context(), file)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d clientes, %d transacciones cargados\n",
				e.storage.Backend, len(snap.Customers), len(snap.Transactions))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "ruta del snapshot JSON")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
