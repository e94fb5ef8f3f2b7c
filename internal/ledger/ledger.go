// Package ledger owns the confirmed transaction records: an in-memory
// repository keyed by unique ID with JSON persistence, a mutable
// exchange-rate table and text reports.
package ledger

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Wilfredo1970/Finanzas/internal/models"
)

// Data is the on-disk shape of the ledger file.
type Data struct {
	Incomes           []models.Transaction                `json:"incomes"`
	Expenses          []models.Transaction                `json:"expenses"`
	IncomeCategories  []string                            `json:"income_categories"`
	ExpenseCategories []string                            `json:"expense_categories"`
	Currencies        []models.Currency                   `json:"currencies"`
	MainCurrency      models.Currency                     `json:"main_currency"`
	ExchangeRates     map[models.Currency]decimal.Decimal `json:"exchange_rates"`
	Banks             []string                            `json:"banks"`
	LastSaved         string                              `json:"last_saved,omitempty"`
}

// defaultData seeds a fresh ledger configured for Chile.
func defaultData() Data {
	return Data{
		IncomeCategories: []string{
			"Salario CLP", "Freelance USD", "PayPal USD",
			"Transferencia Internacional", "Inversiones", "Venta",
			"Bonificación", "Otros",
		},
		ExpenseCategories: []string{
			"Alimentación", "Transporte", "Hogar", "Salud",
			"Entretenimiento", "Educación", "Servicios", "Servicios USD",
			"Tarjeta de Crédito", "Otros",
		},
		Currencies:   models.Currencies,
		MainCurrency: models.CLP,
		ExchangeRates: map[models.Currency]decimal.Decimal{
			models.USD: decimal.NewFromInt(950),
			models.EUR: decimal.NewFromInt(1050),
			models.CLP: decimal.NewFromInt(1),
		},
		Banks: []string{
			"Banco de Chile", "BCI", "Santander", "Banco Estado", "Itau",
			"BICE", "Security", "Otros",
		},
	}
}

// Ledger is the single coordinator that owns the record collections. All
// access goes through its methods; the mutex makes the write discipline
// explicit for the HTTP API, which shares one instance across requests.
type Ledger struct {
	mu   sync.Mutex
	path string
	data Data
}

// New creates an empty ledger persisted at path.
func New(path string) *Ledger {
	return &Ledger{path: path, data: defaultData()}
}

// Append validates a confirmed draft, assigns it a unique ID and stores it
// in the partition for its kind. Returns the stored record.
func (l *Ledger) Append(draft models.TransactionDraft, kind models.Kind) (models.Transaction, error) {
	if draft.Date == "" {
		return models.Transaction{}, fmt.Errorf("transaction has no date")
	}
	if !draft.Amount.IsPositive() {
		return models.Transaction{}, fmt.Errorf("transaction amount must be positive, got %s", draft.Amount)
	}

	txn := models.Transaction{
		ID:          uuid.NewString(),
		Date:        draft.Date,
		Description: draft.Description,
		Category:    draft.Category,
		Amount:      draft.Amount,
		Currency:    draft.Currency,
		Kind:        kind,
	}
	if txn.Currency == "" {
		txn.Currency = models.CLP
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if kind == models.Income {
		l.data.Incomes = append(l.data.Incomes, txn)
	} else {
		l.data.Expenses = append(l.data.Expenses, txn)
	}
	return txn, nil
}

// Remove deletes the record with the given ID from either partition.
func (l *Ledger) Remove(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, txn := range l.data.Incomes {
		if txn.ID == id {
			l.data.Incomes = append(l.data.Incomes[:i], l.data.Incomes[i+1:]...)
			return nil
		}
	}
	for i, txn := range l.data.Expenses {
		if txn.ID == id {
			l.data.Expenses = append(l.data.Expenses[:i], l.data.Expenses[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("transaction %s not found", id)
}

// List returns a copy of the records for a kind, in insertion order.
func (l *Ledger) List(kind models.Kind) []models.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	var src []models.Transaction
	if kind == models.Income {
		src = l.data.Incomes
	} else {
		src = l.data.Expenses
	}
	out := make([]models.Transaction, len(src))
	copy(out, src)
	return out
}

// All returns incomes followed by expenses.
func (l *Ledger) All() []models.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.Transaction, 0, len(l.data.Incomes)+len(l.data.Expenses))
	out = append(out, l.data.Incomes...)
	out = append(out, l.data.Expenses...)
	return out
}

// Rates returns a copy of the exchange-rate table.
func (l *Ledger) Rates() map[models.Currency]decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[models.Currency]decimal.Decimal, len(l.data.ExchangeRates))
	for c, r := range l.data.ExchangeRates {
		out[c] = r
	}
	return out
}

// SetRate updates the exchange rate for a currency against the main
// currency. The main currency rate is fixed at 1.
func (l *Ledger) SetRate(currency models.Currency, rate decimal.Decimal) error {
	if !rate.IsPositive() {
		return fmt.Errorf("exchange rate must be positive, got %s", rate)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if currency == l.data.MainCurrency {
		return fmt.Errorf("cannot change the rate of the main currency %s", currency)
	}
	l.data.ExchangeRates[currency] = rate
	return nil
}

// ToMain converts an amount in the given currency into the main currency
// using the current rate table. Unknown currencies convert at 1.
func (l *Ledger) ToMain(amount decimal.Decimal, currency models.Currency) decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.toMainLocked(amount, currency)
}

func (l *Ledger) toMainLocked(amount decimal.Decimal, currency models.Currency) decimal.Decimal {
	rate, ok := l.data.ExchangeRates[currency]
	if !ok {
		return amount
	}
	return amount.Mul(rate)
}

// MainCurrency returns the reporting currency.
func (l *Ledger) MainCurrency() models.Currency {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.data.MainCurrency
}

// Categories returns the configured category names for a kind.
func (l *Ledger) Categories(kind models.Kind) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if kind == models.Income {
		return append([]string(nil), l.data.IncomeCategories...)
	}
	return append([]string(nil), l.data.ExpenseCategories...)
}

// sortedKeys returns map keys sorted by descending value, for reports.
func sortedKeys(m map[string]decimal.Decimal) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if !m[keys[i]].Equal(m[keys[j]]) {
			return m[keys[i]].GreaterThan(m[keys[j]])
		}
		return keys[i] < keys[j]
	})
	return keys
}
