package parser

import (
	"testing"

	"github.com/Wilfredo1970/Finanzas/internal/models"
)

func TestDetectBank(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected models.BankLabel
	}{
		{
			name:     "detects Santander",
			text:     "SANTANDER\nESTADO DE CUENTA EN MONEDA NACIONAL\n25/08/2025",
			expected: models.BankSantander,
		},
		{
			name:     "detects BCI",
			text:     "Banco Credito Inversiones\nCartola de movimientos",
			expected: models.BankBCI,
		},
		{
			name:     "detects Banco Estado via cuenta rut",
			text:     "Movimientos Cuenta RUT agosto",
			expected: models.BankEstado,
		},
		{
			name:     "detects Falabella via CMR",
			text:     "Tarjeta CMR estado de cuenta",
			expected: models.BankFalabella,
		},
		{
			name:     "detects PayPal",
			text:     "Payment received from client",
			expected: models.BankPayPal,
		},
		{
			name:     "earlier bank wins when several match",
			text:     "worldmember points\nbanco credito inversiones",
			expected: models.BankSantander,
		},
		{
			name:     "unknown text falls back to generic",
			text:     "some unrelated document",
			expected: models.BankGeneric,
		},
		{
			name:     "empty text falls back to generic",
			text:     "",
			expected: models.BankGeneric,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectBank(tt.text)
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}
