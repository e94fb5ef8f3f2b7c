package ledger

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wilfredo1970/Finanzas/internal/models"
)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "financial_data.json"))
}

func draft(date, desc, amount string, currency models.Currency, category string) models.TransactionDraft {
	return models.TransactionDraft{
		Date:        date,
		Description: desc,
		Amount:      decimal.RequireFromString(amount),
		Currency:    currency,
		Category:    category,
	}
}

func TestAppendAssignsUniqueIDs(t *testing.T) {
	l := newTestLedger(t)

	a, err := l.Append(draft("2025-08-25", "SUPERMERCADOS LILY", "45000", models.CLP, "Alimentación"), models.Expense)
	require.NoError(t, err)
	b, err := l.Append(draft("2025-08-26", "SUELDO", "1500000", models.CLP, "Salario CLP"), models.Income)
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.NotEmpty(t, b.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, models.Expense, a.Kind)
	assert.Equal(t, models.Income, b.Kind)
	assert.Len(t, l.List(models.Expense), 1)
	assert.Len(t, l.List(models.Income), 1)
}

func TestAppendRejectsInvalidDrafts(t *testing.T) {
	l := newTestLedger(t)

	_, err := l.Append(draft("2025-08-25", "ANULADO", "0", models.CLP, ""), models.Expense)
	assert.Error(t, err, "non-positive amount")

	_, err = l.Append(models.TransactionDraft{Description: "sin fecha", Amount: decimal.NewFromInt(10)}, models.Expense)
	assert.Error(t, err, "missing date")
}

func TestRemove(t *testing.T) {
	l := newTestLedger(t)
	txn, err := l.Append(draft("2025-08-25", "COPEC", "30000", models.CLP, "Transporte"), models.Expense)
	require.NoError(t, err)

	require.NoError(t, l.Remove(txn.ID))
	assert.Empty(t, l.List(models.Expense))
	assert.Error(t, l.Remove(txn.ID), "removing twice")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "financial_data.json")

	l := New(path)
	_, err := l.Append(draft("2025-08-25", "SUPERMERCADOS LILY", "45000", models.CLP, "Alimentación"), models.Expense)
	require.NoError(t, err)
	_, err = l.Append(draft("2025-08-04", "Honorarios", "850.50", models.USD, "Freelance USD"), models.Income)
	require.NoError(t, err)
	require.NoError(t, l.SetRate(models.USD, decimal.NewFromInt(920)))
	require.NoError(t, l.Save())

	reloaded := New(path)
	require.NoError(t, reloaded.Load())

	expenses := reloaded.List(models.Expense)
	require.Len(t, expenses, 1)
	assert.Equal(t, "SUPERMERCADOS LILY", expenses[0].Description)
	assert.True(t, expenses[0].Amount.Equal(decimal.NewFromInt(45000)))

	incomes := reloaded.List(models.Income)
	require.Len(t, incomes, 1)
	assert.True(t, incomes[0].Amount.Equal(decimal.RequireFromString("850.50")))
	assert.Equal(t, models.USD, incomes[0].Currency)

	assert.True(t, reloaded.Rates()[models.USD].Equal(decimal.NewFromInt(920)))
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	l := New(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, l.Load())
	assert.Equal(t, models.CLP, l.MainCurrency())
	assert.True(t, l.Rates()[models.USD].Equal(decimal.NewFromInt(950)))
}

func TestBackupWritesTimestampedCopy(t *testing.T) {
	l := newTestLedger(t)
	_, err := l.Append(draft("2025-08-25", "COPEC", "30000", models.CLP, "Transporte"), models.Expense)
	require.NoError(t, err)

	dir := t.TempDir()
	path, err := l.Backup(dir)
	require.NoError(t, err)
	assert.Contains(t, path, "backup_financiero_")

	restored := New(path)
	require.NoError(t, restored.Load())
	assert.Len(t, restored.List(models.Expense), 1)
}

func TestExchangeRates(t *testing.T) {
	l := newTestLedger(t)

	// USD converts at the configured rate, CLP at 1.
	got := l.ToMain(decimal.NewFromInt(10), models.USD)
	assert.True(t, got.Equal(decimal.NewFromInt(9500)), "got %s", got)
	got = l.ToMain(decimal.NewFromInt(45000), models.CLP)
	assert.True(t, got.Equal(decimal.NewFromInt(45000)))

	require.NoError(t, l.SetRate(models.USD, decimal.NewFromInt(1000)))
	got = l.ToMain(decimal.NewFromInt(10), models.USD)
	assert.True(t, got.Equal(decimal.NewFromInt(10000)))

	assert.Error(t, l.SetRate(models.CLP, decimal.NewFromInt(2)), "main currency rate is fixed")
	assert.Error(t, l.SetRate(models.USD, decimal.Zero), "rate must be positive")
}

func TestMonthlySummary(t *testing.T) {
	l := newTestLedger(t)
	_, err := l.Append(draft("2025-08-01", "Sueldo Agosto", "1500000", models.CLP, "Salario CLP"), models.Income)
	require.NoError(t, err)
	_, err = l.Append(draft("2025-08-04", "OpenAI", "23.80", models.USD, "Servicios USD"), models.Expense)
	require.NoError(t, err)
	_, err = l.Append(draft("2025-08-25", "SUPERMERCADOS LILY", "45000", models.CLP, "Alimentación"), models.Expense)
	require.NoError(t, err)
	// Outside the month: ignored.
	_, err = l.Append(draft("2025-07-31", "COPEC", "30000", models.CLP, "Transporte"), models.Expense)
	require.NoError(t, err)

	s := l.Monthly("2025-08")

	assert.True(t, s.IncomeMain.Equal(decimal.NewFromInt(1500000)), "income %s", s.IncomeMain)
	// 23.80 USD * 950 + 45000 CLP = 22610 + 45000
	assert.True(t, s.ExpenseMain.Equal(decimal.RequireFromString("67610")), "expense %s", s.ExpenseMain)
	assert.True(t, s.ExpenseUSD.Equal(decimal.RequireFromString("23.80")))
	assert.True(t, s.Surplus)
}

func TestByCategory(t *testing.T) {
	l := newTestLedger(t)
	_, err := l.Append(draft("2025-08-25", "SUPERMERCADOS LILY", "45000", models.CLP, "Alimentación"), models.Expense)
	require.NoError(t, err)
	_, err = l.Append(draft("2025-08-26", "JUMBO", "30000", models.CLP, "Alimentación"), models.Expense)
	require.NoError(t, err)
	_, err = l.Append(draft("2025-08-04", "OpenAI", "10", models.USD, "Servicios USD"), models.Expense)
	require.NoError(t, err)

	br := l.ByCategory()
	assert.True(t, br.Expenses["Alimentación"].Equal(decimal.NewFromInt(75000)))
	assert.True(t, br.Expenses["Servicios USD"].Equal(decimal.NewFromInt(9500)))

	text := l.ByCategoryText()
	assert.Contains(t, text, "Alimentación")
	assert.Contains(t, text, "GASTOS POR CATEGORÍA")
}

func TestSeed(t *testing.T) {
	l := newTestLedger(t)
	require.NoError(t, l.Seed())
	assert.NotEmpty(t, l.List(models.Income))
	assert.NotEmpty(t, l.List(models.Expense))
}
