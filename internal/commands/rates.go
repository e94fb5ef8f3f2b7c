package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Wilfredo1970/Finanzas/internal/models"
)

func newRatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Show the exchange rates against the main currency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			main := a.ledger.MainCurrency()
			rates := a.ledger.Rates()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Moneda principal: %s\n", main)
			for _, c := range models.Currencies {
				rate, ok := rates[c]
				if !ok || c == main {
					continue
				}
				fmt.Fprintf(out, "  1 %s = %s %s\n", c, rate.String(), main)
			}
			return nil
		},
	}

	set := &cobra.Command{
		Use:   "set <moneda> <tasa>",
		Short: "Update the exchange rate for a currency",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rate, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("parsing rate %q: %w", args[1], err)
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			currency := models.ParseCurrency(args[0])
			if err := a.ledger.SetRate(currency, rate); err != nil {
				return err
			}
			if err := a.ledger.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "1 %s = %s %s\n", currency, rate.String(), a.ledger.MainCurrency())
			return nil
		},
	}

	cmd.AddCommand(set)
	return cmd
}
