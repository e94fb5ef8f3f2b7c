package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print ledger reports",
	}

	monthly := &cobra.Command{
		Use:   "monthly [YYYY-MM]",
		Short: "Income and expense summary for a month (defaults to the current one)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			month := time.Now().Format("2006-01")
			if len(args) > 0 {
				month = args[0]
			}
			if len(month) != 7 || month[4] != '-' {
				return fmt.Errorf("month must be YYYY-MM, got %q", month)
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), a.ledger.MonthlyText(month))
			return nil
		},
	}

	categories := &cobra.Command{
		Use:   "categories",
		Short: "Per-category totals in the main currency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), a.ledger.ByCategoryText())
			return nil
		},
	}

	cmd.AddCommand(monthly)
	cmd.AddCommand(categories)
	return cmd
}
