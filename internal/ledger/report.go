package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Wilfredo1970/Finanzas/internal/models"
)

// MonthlySummary aggregates one month of activity converted into the main
// currency, with a USD breakdown.
type MonthlySummary struct {
	Month       string          `json:"month"` // YYYY-MM
	IncomeMain  decimal.Decimal `json:"incomeMain"`
	ExpenseMain decimal.Decimal `json:"expenseMain"`
	BalanceMain decimal.Decimal `json:"balanceMain"`
	IncomeUSD   decimal.Decimal `json:"incomeUSD"`
	ExpenseUSD  decimal.Decimal `json:"expenseUSD"`
	Surplus     bool            `json:"surplus"`
}

// Monthly computes the summary for the given YYYY-MM month.
func (l *Ledger) Monthly(month string) MonthlySummary {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := MonthlySummary{
		Month:       month,
		IncomeMain:  decimal.Zero,
		ExpenseMain: decimal.Zero,
		IncomeUSD:   decimal.Zero,
		ExpenseUSD:  decimal.Zero,
	}
	for _, txn := range l.data.Incomes {
		if !strings.HasPrefix(txn.Date, month) {
			continue
		}
		s.IncomeMain = s.IncomeMain.Add(l.toMainLocked(txn.Amount, txn.Currency))
		if txn.Currency == models.USD {
			s.IncomeUSD = s.IncomeUSD.Add(txn.Amount)
		}
	}
	for _, txn := range l.data.Expenses {
		if !strings.HasPrefix(txn.Date, month) {
			continue
		}
		s.ExpenseMain = s.ExpenseMain.Add(l.toMainLocked(txn.Amount, txn.Currency))
		if txn.Currency == models.USD {
			s.ExpenseUSD = s.ExpenseUSD.Add(txn.Amount)
		}
	}
	s.BalanceMain = s.IncomeMain.Sub(s.ExpenseMain)
	s.Surplus = s.IncomeMain.GreaterThan(s.ExpenseMain)
	return s
}

// MonthlyText renders the monthly summary as a text report.
func (l *Ledger) MonthlyText(month string) string {
	s := l.Monthly(month)
	state := "Déficit"
	if s.Surplus {
		state = "Superávit"
	}
	main := l.MainCurrency()

	var b strings.Builder
	fmt.Fprintf(&b, "REPORTE MENSUAL %s\n", s.Month)
	fmt.Fprintf(&b, "Total Ingresos: $%s %s\n", s.IncomeMain.StringFixed(0), main)
	fmt.Fprintf(&b, "Total Gastos:   $%s %s\n", s.ExpenseMain.StringFixed(0), main)
	fmt.Fprintf(&b, "Balance:        $%s %s\n", s.BalanceMain.StringFixed(0), main)
	fmt.Fprintf(&b, "Estado:         %s\n", state)
	fmt.Fprintf(&b, "Ingresos USD:   $%s\n", s.IncomeUSD.StringFixed(2))
	fmt.Fprintf(&b, "Gastos USD:     $%s\n", s.ExpenseUSD.StringFixed(2))
	return b.String()
}

// CategoryBreakdown holds per-category totals in the main currency.
type CategoryBreakdown struct {
	Incomes  map[string]decimal.Decimal `json:"incomes"`
	Expenses map[string]decimal.Decimal `json:"expenses"`
}

// ByCategory totals every record per category, converted into the main
// currency.
func (l *Ledger) ByCategory() CategoryBreakdown {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := CategoryBreakdown{
		Incomes:  make(map[string]decimal.Decimal),
		Expenses: make(map[string]decimal.Decimal),
	}
	for _, txn := range l.data.Incomes {
		out.Incomes[txn.Category] = out.Incomes[txn.Category].Add(l.toMainLocked(txn.Amount, txn.Currency))
	}
	for _, txn := range l.data.Expenses {
		out.Expenses[txn.Category] = out.Expenses[txn.Category].Add(l.toMainLocked(txn.Amount, txn.Currency))
	}
	return out
}

// ByCategoryText renders the category breakdown, largest totals first,
// with each category's share of its partition.
func (l *Ledger) ByCategoryText() string {
	br := l.ByCategory()

	var b strings.Builder
	b.WriteString("ANÁLISIS POR CATEGORÍAS\n\nINGRESOS POR CATEGORÍA:\n")
	writeCategoryLines(&b, br.Incomes)
	b.WriteString("\nGASTOS POR CATEGORÍA:\n")
	writeCategoryLines(&b, br.Expenses)
	return b.String()
}

func writeCategoryLines(b *strings.Builder, totals map[string]decimal.Decimal) {
	total := decimal.Zero
	for _, amount := range totals {
		total = total.Add(amount)
	}
	for _, cat := range sortedKeys(totals) {
		amount := totals[cat]
		pct := decimal.Zero
		if total.IsPositive() {
			pct = amount.Div(total).Mul(decimal.NewFromInt(100))
		}
		fmt.Fprintf(b, "  %-25s $%12s (%5s%%)\n", cat, amount.StringFixed(0), pct.StringFixed(1))
	}
}
