// Package writer handles the ledger CSV interchange format.
package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"

	"github.com/Wilfredo1970/Finanzas/internal/models"
)

// Header is the fixed CSV column set. Round-tripping through Write and
// Read preserves the literal date, description, category, amount and
// currency values.
var Header = []string{"Tipo", "Fecha", "Descripción", "Categoría", "Monto", "Moneda"}

const (
	colKind = iota
	colDate
	colDescription
	colCategory
	colAmount
	colCurrency
	numFields
)

// Write writes transactions in CSV format to the given writer.
func Write(out io.Writer, txns []models.Transaction) error {
	w := csv.NewWriter(out)
	defer w.Flush()

	if err := w.Write(Header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, txn := range txns {
		row := []string{
			string(txn.Kind),
			txn.Date,
			txn.Description,
			txn.Category,
			txn.Amount.String(),
			string(txn.Currency),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// WriteFile writes transactions to a CSV file at the given path.
func WriteFile(path string, txns []models.Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file %q: %w", path, err)
	}
	defer f.Close()
	return Write(f, txns)
}

// Read parses the CSV interchange format back into drafts with their kind
// set, ready to be appended to a ledger.
func Read(in io.Reader) ([]models.TransactionDraft, error) {
	r := csv.NewReader(in)
	r.FieldsPerRecord = numFields

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	var drafts []models.TransactionDraft
	for i, rec := range records[1:] {
		d, err := parseRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		drafts = append(drafts, d)
	}
	return drafts, nil
}

// ReadFile parses a CSV file from disk.
func ReadFile(path string) ([]models.TransactionDraft, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening CSV %q: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

func parseRow(rec []string) (models.TransactionDraft, error) {
	amount, err := decimal.NewFromString(rec[colAmount])
	if err != nil {
		return models.TransactionDraft{}, fmt.Errorf("parsing amount %q: %w", rec[colAmount], err)
	}
	return models.TransactionDraft{
		Date:        rec[colDate],
		Description: rec[colDescription],
		Category:    rec[colCategory],
		Amount:      amount,
		Currency:    models.ParseCurrency(rec[colCurrency]),
		Kind:        models.ParseKind(rec[colKind]),
	}, nil
}
