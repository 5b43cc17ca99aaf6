package format

import "testing"

func TestFormatAttributeValue(t *testing.T) {
	tests := []struct {
		key   string
		value interface{}
		want  string
	}{
		{"dimensions", "30x40", "30 × 40 cm"},
		{"Size", "30 X 40", "30 × 40 cm"},
		{"height", "25", "25 cm"},
		{"width", "30 x 40 cm", "30 × 40 cm"},
		{"Material", "Marble", "Marble"},
		{"color", "30x40", "30x40"},
		{"diameter", 12, "12 cm"},
		{"depth", nil, ""},
	}
	for _, tt := range tests {
		got := FormatAttributeValue(tt.key, tt.value)
		if got != tt.want {
			t.Errorf("FormatAttributeValue(%q, %v) = %q, want %q", tt.key, tt.value, got, tt.want)
		}
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		value interface{}
		want  string
	}{
		{1234.5, "€1.234,50"},
		{"1234.50", "€1.234,50"},
		{0.0, "€0,00"},
		{"450.00", "€450,00"},
		{1000000, "€1.000.000,00"},
		{"not-a-number", "€0,00"},
		{nil, "€0,00"},
	}
	for _, tt := range tests {
		got := FormatCurrency(tt.value)
		if got != tt.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}
