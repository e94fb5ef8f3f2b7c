package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBackupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Write a timestamped backup of the ledger file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			path, err := a.ledger.Backup(a.cfg.BackupDir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Respaldo creado: %s\n", path)
			return nil
		},
	}
	return cmd
}

func newSeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load sample transactions into the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.ledger.Seed(); err != nil {
				return err
			}
			if err := a.ledger.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Datos de ejemplo cargados en %s\n", a.cfg.DataFile)
			return nil
		},
	}
	return cmd
}
