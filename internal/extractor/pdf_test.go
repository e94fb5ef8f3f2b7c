package extractor

import (
	"testing"
)

func TestIsReadableText(t *testing.T) {
	tests := []struct {
		name     string
		pages    []string
		expected bool
	}{
		{
			name: "statement text is readable",
			pages: []string{
				"BANCO SANTANDER\nESTADO DE CUENTA\n25/08/2025 SUPERMERCADOS LILY $45,000\nSaldo final del periodo",
			},
			expected: true,
		},
		{
			name:     "too short",
			pages:    []string{"banco"},
			expected: false,
		},
		{
			name: "garbage from identity encoded fonts",
			pages: []string{
				"",
			},
			expected: false,
		},
		{
			name: "readable characters but no statement vocabulary",
			pages: []string{
				"lorem ipsum dolor sit amet consectetur adipiscing elit sed do eiusmod tempor incididunt",
			},
			expected: false,
		},
		{
			name:     "empty pages",
			pages:    nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := isReadableText(tt.pages)
			if got != tt.expected {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestTextQuality(t *testing.T) {
	if q := textQuality([]string{"cuenta corriente 123"}); q < 0.99 {
		t.Errorf("expected fully readable text, got %f", q)
	}
	if q := textQuality(nil); q != 0 {
		t.Errorf("expected 0 for empty input, got %f", q)
	}
}
