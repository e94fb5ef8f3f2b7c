package models

import (
	"github.com/shopspring/decimal"
)

// Currency identifies one of the supported statement currencies.
type Currency string

const (
	CLP Currency = "CLP"
	USD Currency = "USD"
	EUR Currency = "EUR"
)

// Currencies lists the supported currencies in display order.
var Currencies = []Currency{CLP, USD, EUR}

// ParseCurrency returns the Currency for a code, defaulting to CLP.
func ParseCurrency(code string) Currency {
	switch code {
	case "USD", "usd":
		return USD
	case "EUR", "eur":
		return EUR
	default:
		return CLP
	}
}

// Kind distinguishes income from expense records.
type Kind string

const (
	Income  Kind = "Ingreso"
	Expense Kind = "Gasto"
)

// ParseKind maps the CSV/API literal to a Kind, defaulting to Expense.
func ParseKind(s string) Kind {
	if s == string(Income) || s == "income" || s == "ingreso" {
		return Income
	}
	return Expense
}

// TransactionDraft is an extracted, not-yet-confirmed candidate
// transaction. The extractor fills every field except Category (set later
// by the classifier) and Kind (assigned explicitly by the caller, never
// guessed by the extraction stage).
type TransactionDraft struct {
	Date        string          `json:"date"` // YYYY-MM-DD
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"` // always > 0
	Currency    Currency        `json:"currency"`
	Category    string          `json:"category"`
	SourceLine  string          `json:"sourceLine,omitempty"`
	Kind        Kind            `json:"kind,omitempty"`
}

// Transaction is a confirmed ledger record.
type Transaction struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    Currency        `json:"currency"`
	Kind        Kind            `json:"kind"`
}

// BankLabel is the document-level institution classification. It is a
// display hint only and never gates per-line extraction.
type BankLabel string

const (
	BankSantander BankLabel = "Santander"
	BankBCI       BankLabel = "BCI"
	BankChile     BankLabel = "Banco de Chile"
	BankEstado    BankLabel = "Banco Estado"
	BankItau      BankLabel = "Itaú"
	BankFalabella BankLabel = "Falabella"
	BankRipley    BankLabel = "Ripley"
	BankPayPal    BankLabel = "PayPal"
	BankGeneric   BankLabel = "Banco Genérico"
)
