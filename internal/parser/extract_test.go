package parser

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Wilfredo1970/Finanzas/internal/models"
)

func TestExtractStatement(t *testing.T) {
	text := "25/08/2025 SUPERMERCADOS LILY $45,000\n" +
		"26/08/2025 OPENAI CHATGPT SUBSCRIPTION $23,612\n" +
		"27/08/2025 SPOTIFY PREMIUM CL 7,050.00\n"

	drafts := Extract(text)
	if len(drafts) != 3 {
		t.Fatalf("expected 3 drafts, got %d", len(drafts))
	}

	want := []struct {
		date        string
		description string
		amount      string
		currency    models.Currency
	}{
		{"2025-08-25", "SUPERMERCADOS LILY", "45000", models.CLP},
		{"2025-08-26", "OPENAI CHATGPT SUBSCRIPTION", "23612", models.CLP},
		{"2025-08-27", "SPOTIFY PREMIUM CL", "7050.00", models.CLP},
	}

	for i, w := range want {
		d := drafts[i]
		if d.Date != w.date {
			t.Errorf("draft %d date: got %q, want %q", i, d.Date, w.date)
		}
		if d.Description != w.description {
			t.Errorf("draft %d description: got %q, want %q", i, d.Description, w.description)
		}
		if !d.Amount.Equal(decimal.RequireFromString(w.amount)) {
			t.Errorf("draft %d amount: got %s, want %s", i, d.Amount, w.amount)
		}
		if d.Currency != w.currency {
			t.Errorf("draft %d currency: got %q, want %q", i, d.Currency, w.currency)
		}
		if d.Category != "" {
			t.Errorf("draft %d category should be empty until classification, got %q", i, d.Category)
		}
		if d.Kind != "" {
			t.Errorf("draft %d kind should be unassigned, got %q", i, d.Kind)
		}
	}
}

func TestExtractNoiseFilter(t *testing.T) {
	// Shorter than 10 characters: dropped even though it carries a valid
	// date and amount.
	drafts := Extract("1/1/20 $5")
	if len(drafts) != 0 {
		t.Errorf("expected no drafts from short line, got %d", len(drafts))
	}
}

func TestExtractDropsLinesWithoutDateOrAmount(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"no date", "SUPERMERCADO JUMBO $12.500 COMPRA"},
		{"no amount", "25/08/2025 SALDO ANTERIOR PENDIENTE"},
		{"zero amount", "25/08/2025 CARGO ANULADO POR COMERCIO $0"},
		{"header noise", "MOVIMIENTOS DEL PERIODO"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if drafts := Extract(tt.line); len(drafts) != 0 {
				t.Errorf("expected no drafts, got %d", len(drafts))
			}
		})
	}
}

func TestExtractOrderAndPurity(t *testing.T) {
	text := "ESTADO DE CUENTA SANTANDER\n" +
		"25/08/2025 SUPERMERCADOS LILY $45,000\n" +
		"detalle sin importancia\n" +
		"27/08/2025 COPEC BENCINA $30.000\n"

	first := Extract(text)
	second := Extract(text)

	if len(first) != 2 {
		t.Fatalf("expected 2 drafts, got %d", len(first))
	}
	if first[0].Date != "2025-08-25" || first[1].Date != "2025-08-27" {
		t.Errorf("drafts out of document order: %q, %q", first[0].Date, first[1].Date)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated extraction of identical input produced different drafts")
	}
}

func TestExtractDayNeverReadAsAmount(t *testing.T) {
	drafts := Extract("27/08/2025 SPOTIFY PREMIUM CL 7,050.00")
	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}
	if !drafts[0].Amount.Equal(decimal.RequireFromString("7050.00")) {
		t.Errorf("amount: got %s, want 7050.00 (day digits must not win)", drafts[0].Amount)
	}
}

func TestCleanDescription(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected string
	}{
		{
			name:     "strips date and dollar amount",
			line:     "25/08/2025 SUPERMERCADOS LILY $45,000",
			expected: "SUPERMERCADOS LILY",
		},
		{
			name:     "strips bare amount but keeps trailing text",
			line:     "27/08/2025 SPOTIFY PREMIUM CL 7,050.00",
			expected: "SPOTIFY PREMIUM CL",
		},
		{
			name:     "empty description is permitted",
			line:     "25/08/2025 $45,000",
			expected: "",
		},
		{
			name:     "internal newline collapses to space",
			line:     "25/08/2025 PAGO\nAUTOMATICO $1.000",
			expected: "PAGO AUTOMATICO",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanDescription(tt.line)
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}
