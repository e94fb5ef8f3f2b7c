// Package commands defines the finanzas CLI.
package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "finanzas",
		Short:   "Gestor de finanzas personales para cartolas bancarias chilenas",
		Version: "1.0.0",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newImportCSVCommand())
	rootCmd.AddCommand(newExportCommand())
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newRatesCommand())
	rootCmd.AddCommand(newBackupCommand())
	rootCmd.AddCommand(newSeedCommand())

	return rootCmd
}
