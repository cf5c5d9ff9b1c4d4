package rates

import (
	"math"
	"testing"
)

func TestNormalizeRateTypeAndTiming(t *testing.T) {
	rateTypes := map[string]RateType{
		"nominal":          Nominal,
		"efectiva":         Effective,
		"Effective":        Effective,
		"efectiva_anual":   EffectiveAnnual,
		"TEA":              EffectiveAnnual,
		"effective_annual": EffectiveAnnual,
		"simple":           RateType("simple"),
	}
	for input, expected := range rateTypes {
		if got := NormalizeRateType(input); got != expected {
			t.Errorf("NormalizeRateType(%q) = %q, expected %q", input, got, expected)
		}
	}

	timings := map[string]Timing{
		"due":          Due,
		"vencida":      Due,
		"anticipada":   Anticipated,
		" ANTICIPATED": Anticipated,
		"":             Timing(""),
	}
	for input, expected := range timings {
		if got := NormalizeTiming(input); got != expected {
			t.Errorf("NormalizeTiming(%q) = %q, expected %q", input, got, expected)
		}
	}
}

func TestConventionLabel(t *testing.T) {
	tests := []struct {
		name     string
		conv     Convention
		expected string
	}{
		{"Effective", conv(Effective, Quarterly, Due), "effective quarterly (due)"},
		{"Effective annual", conv(EffectiveAnnual, Monthly, Due), "annual effective rate (TEA)"},
		{"Nominal due", conv(Nominal, Daily, Due), "nominal annual compounded daily (due)"},
		{"Nominal anticipated", conv(Nominal, Semiannual, Anticipated), "nominal annual compounded semiannual (anticipated)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.conv.Label(); got != tt.expected {
				t.Errorf("Label() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestTimingConversionsAreInverse(t *testing.T) {
	for _, i := range []float64{0, 0.001, 0.015, 0.2, 3} {
		d := DueToAnticipated(i)
		if d >= 1 {
			t.Errorf("DueToAnticipated(%v) = %v, expected below 1", i, d)
		}
		if back := AnticipatedToDue(d); math.Abs(back-i) > 1e-12 {
			t.Errorf("AnticipatedToDue(DueToAnticipated(%v)) = %v", i, back)
		}
	}
}

func TestAnnualEffectiveAndPeriodicFromAnnual(t *testing.T) {
	tea := AnnualEffective(0.015, 12)
	if math.Abs(tea-0.19561817146153395) > 1e-12 {
		t.Errorf("AnnualEffective(0.015, 12) = %v", tea)
	}
	if periodic := PeriodicFromAnnual(tea, 12); math.Abs(periodic-0.015) > 1e-12 {
		t.Errorf("PeriodicFromAnnual(%v, 12) = %v, expected 0.015", tea, periodic)
	}
}
