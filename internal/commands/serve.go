package commands

import (
	"github.com/spf13/cobra"

	"github.com/Wilfredo1970/Finanzas/internal/api"
)

func newServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			imp, err := a.importer()
			if err != nil {
				return err
			}

			if addr == "" {
				addr = a.cfg.Addr
			}
			srv := api.New(a.ledger, imp, a.cfg.BackupDir, a.log)
			return srv.Listen(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to FINANZAS_ADDR or :8080)")
	return cmd
}
