package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Wilfredo1970/Finanzas/internal/models"
)

// Load reads the ledger file from disk. A missing file is not an error:
// the ledger keeps its defaults and the file appears on first Save.
func (l *Ledger) Load() error {
	raw, err := os.ReadFile(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading ledger %s: %w", l.path, err)
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("parsing ledger %s: %w", l.path, err)
	}

	defaults := defaultData()
	if len(data.IncomeCategories) == 0 {
		data.IncomeCategories = defaults.IncomeCategories
	}
	if len(data.ExpenseCategories) == 0 {
		data.ExpenseCategories = defaults.ExpenseCategories
	}
	if len(data.Currencies) == 0 {
		data.Currencies = defaults.Currencies
	}
	if data.MainCurrency == "" {
		data.MainCurrency = defaults.MainCurrency
	}
	if len(data.ExchangeRates) == 0 {
		data.ExchangeRates = defaults.ExchangeRates
	}
	if len(data.Banks) == 0 {
		data.Banks = defaults.Banks
	}

	// Records written by older versions may predate the currency field.
	for i := range data.Incomes {
		if data.Incomes[i].Currency == "" {
			data.Incomes[i].Currency = models.CLP
		}
		data.Incomes[i].Kind = models.Income
	}
	for i := range data.Expenses {
		if data.Expenses[i].Currency == "" {
			data.Expenses[i].Currency = models.CLP
		}
		data.Expenses[i].Kind = models.Expense
	}

	l.mu.Lock()
	l.data = data
	l.mu.Unlock()
	return nil
}

// Save writes the ledger file to disk.
func (l *Ledger) Save() error {
	return l.writeTo(l.path)
}

// Backup writes a timestamped copy of the ledger into dir and returns the
// backup path.
func (l *Ledger) Backup(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating backup dir: %w", err)
	}
	name := fmt.Sprintf("backup_financiero_%s.json", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := l.writeTo(path); err != nil {
		return "", err
	}
	return path, nil
}

func (l *Ledger) writeTo(path string) error {
	l.mu.Lock()
	l.data.LastSaved = time.Now().Format(time.RFC3339)
	raw, err := json.MarshalIndent(l.data, "", "  ")
	l.mu.Unlock()
	if err != nil {
		return fmt.Errorf("encoding ledger: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating ledger dir: %w", err)
		}
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("writing ledger %s: %w", path, err)
	}
	return nil
}

// Seed appends a small set of sample transactions, useful for trying the
// dashboard endpoints on an empty ledger.
func (l *Ledger) Seed() error {
	samples := []struct {
		draft models.TransactionDraft
		kind  models.Kind
	}{
		{models.TransactionDraft{
			Date: "2025-08-01", Description: "Sueldo Agosto",
			Category: "Salario CLP", Amount: decimal.NewFromInt(1500000),
			Currency: models.CLP,
		}, models.Income},
		{models.TransactionDraft{
			Date: "2025-08-04", Description: "OpenAI ChatGPT Subscription",
			Category: "Servicios USD", Amount: decimal.RequireFromString("23.80"),
			Currency: models.USD,
		}, models.Expense},
		{models.TransactionDraft{
			Date: "2025-08-25", Description: "SUPERMERCADOS LILY",
			Category: "Alimentación", Amount: decimal.NewFromInt(45000),
			Currency: models.CLP,
		}, models.Expense},
		{models.TransactionDraft{
			Date: "2025-08-27", Description: "SPOTIFY PREMIUM CL",
			Category: "Entretenimiento", Amount: decimal.RequireFromString("7050.00"),
			Currency: models.CLP,
		}, models.Expense},
	}
	for _, s := range samples {
		if _, err := l.Append(s.draft, s.kind); err != nil {
			return err
		}
	}
	return nil
}
