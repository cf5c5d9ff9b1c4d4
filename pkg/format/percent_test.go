package format

import "testing"

func TestPercent(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		places   int32
		expected string
	}{
		{"Four decimals", 19.561817146153395, 4, "19.5618"},
		{"Two decimals", 18.0943496869335, 2, "18.09"},
		{"Zero padded", 0, 4, "0.0000"},
		{"Half rounds away from zero", 12.5, 0, "13"},
		{"Large rate", 123456.789, 1, "123456.8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percent(tt.input, tt.places); got != tt.expected {
				t.Errorf("Percent(%v, %d) = %q, expected %q", tt.input, tt.places, got, tt.expected)
			}
		})
	}
}

func TestPercentWithSign(t *testing.T) {
	if got := PercentWithSign(1.5309470499731193, 3); got != "1.531%" {
		t.Errorf("PercentWithSign() = %q, expected %q", got, "1.531%")
	}
}
