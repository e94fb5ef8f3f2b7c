package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Wilfredo1970/Finanzas/internal/importer"
	"github.com/Wilfredo1970/Finanzas/internal/models"
	"github.com/Wilfredo1970/Finanzas/internal/writer"
)

func newImportCommand() *cobra.Command {
	var kindFlag string
	var bankFlag string
	var confirm bool
	var csvOut string

	cmd := &cobra.Command{
		Use:   "import <cartola.pdf|cartola.txt>",
		Short: "Extract and classify transactions from a bank statement",
		Long: "Extracts transaction drafts from a statement PDF or a plain text file,\n" +
			"detects the issuing bank and assigns a category to every draft.\n" +
			"Nothing is stored unless --yes is given.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			imp, err := a.importer()
			if err != nil {
				return err
			}

			kind := models.ParseKind(kindFlag)

			var res importer.Result
			if strings.EqualFold(filepath.Ext(args[0]), ".pdf") {
				res, err = imp.ProcessPDF(args[0], kind)
			} else {
				raw, readErr := os.ReadFile(args[0])
				if readErr != nil {
					return fmt.Errorf("reading statement: %w", readErr)
				}
				res, err = imp.ProcessText(string(raw), kind)
			}
			if err != nil {
				return err
			}
			if bankFlag != "" {
				res.Bank = models.BankLabel(bankFlag)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Banco detectado: %s\n", res.Bank)
			fmt.Fprintf(out, "Transacciones encontradas: %d\n\n", len(res.Drafts))
			for _, d := range res.Drafts {
				fmt.Fprintf(out, "  %s  %-16s %10s %s  %s\n",
					d.Date, d.Category, d.Amount.String(), d.Currency, d.Description)
			}

			if csvOut != "" {
				txns := make([]models.Transaction, 0, len(res.Drafts))
				for _, d := range res.Drafts {
					txns = append(txns, models.Transaction{
						Date:        d.Date,
						Description: d.Description,
						Category:    d.Category,
						Amount:      d.Amount,
						Currency:    d.Currency,
						Kind:        d.Kind,
					})
				}
				if err := writer.WriteFile(csvOut, txns); err != nil {
					return err
				}
				fmt.Fprintf(out, "\nCSV escrito en %s\n", csvOut)
			}

			if confirm {
				for _, d := range res.Drafts {
					if _, err := a.ledger.Append(d, kind); err != nil {
						return err
					}
				}
				if err := a.ledger.Save(); err != nil {
					return err
				}
				fmt.Fprintf(out, "\n%d transacciones guardadas en %s\n", len(res.Drafts), a.cfg.DataFile)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kindFlag, "kind", "gasto", "kind for the whole document: gasto or ingreso")
	cmd.Flags().StringVar(&bankFlag, "bank", "", "override the detected bank label")
	cmd.Flags().BoolVar(&confirm, "yes", false, "store the extracted transactions in the ledger")
	cmd.Flags().StringVar(&csvOut, "csv", "", "also write the drafts to a CSV file")
	return cmd
}

func newImportCSVCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import-csv <archivo.csv>",
		Short: "Load transactions from a CSV export into the ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			drafts, err := writer.ReadFile(args[0])
			if err != nil {
				return err
			}
			for _, d := range drafts {
				if _, err := a.ledger.Append(d, d.Kind); err != nil {
					return err
				}
			}
			if err := a.ledger.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d transacciones importadas desde %s\n", len(drafts), args[0])
			return nil
		},
	}
	return cmd
}
