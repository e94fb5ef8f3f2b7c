package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Wilfredo1970/Finanzas/internal/writer"
)

func newExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <archivo.csv>",
		Short: "Export every stored transaction to a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			txns := a.ledger.All()
			if err := writer.WriteFile(args[0], txns); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d transacciones exportadas a %s\n", len(txns), args[0])
			return nil
		},
	}
	return cmd
}
