package rates

import (
	"fmt"
	"strings"
)

// RateType describes how a rate is stated.
type RateType string

// Supported rate types.
const (
	Nominal         RateType = "nominal"
	Effective       RateType = "effective"
	EffectiveAnnual RateType = "effective_annual"
)

// Timing describes when interest is paid within a period.
type Timing string

// Supported timings.
const (
	Due         Timing = "due"
	Anticipated Timing = "anticipated"
)

var rateTypeAliases = map[string]RateType{
	"efectiva":       Effective,
	"efectiva_anual": EffectiveAnnual,
	"tea":            EffectiveAnnual,
	"ea":             EffectiveAnnual,
}

var timingAliases = map[string]Timing{
	"vencida":    Due,
	"anticipada": Anticipated,
}

// Valid reports whether t is a supported rate type.
func (t RateType) Valid() bool {
	switch t {
	case Nominal, Effective, EffectiveAnnual:
		return true
	}
	return false
}

// IsEffective reports whether t already reflects compounding.
func (t RateType) IsEffective() bool {
	return t == Effective || t == EffectiveAnnual
}

// Valid reports whether t is a supported timing.
func (t Timing) Valid() bool {
	return t == Due || t == Anticipated
}

// NormalizeRateType maps a rate type key or one of its Spanish aliases to its
// canonical key.
func NormalizeRateType(s string) RateType {
	key := strings.ToLower(strings.TrimSpace(s))
	if t, ok := rateTypeAliases[key]; ok {
		return t
	}
	return RateType(key)
}

// NormalizeTiming maps a timing key or one of its Spanish aliases to its
// canonical key.
func NormalizeTiming(s string) Timing {
	key := strings.ToLower(strings.TrimSpace(s))
	if t, ok := timingAliases[key]; ok {
		return t
	}
	return Timing(key)
}

// Convention fully describes how a rate is quoted.
type Convention struct {
	Type   RateType `json:"type"`
	Period Period   `json:"period"`
	Timing Timing   `json:"timing"`
}

// Label returns the human-readable description of the convention as it is
// produced for a conversion result.
func (c Convention) Label() string {
	switch c.Type {
	case EffectiveAnnual:
		return "annual effective rate (TEA)"
	case Effective:
		return fmt.Sprintf("effective %s (due)", c.Period)
	default:
		return fmt.Sprintf("nominal annual compounded %s (%s)", c.Period, c.Timing)
	}
}

// Request is a single conversion request. Value is a decimal fraction, so an
// 18% rate is 0.18.
type Request struct {
	Value       float64    `json:"value"`
	Origin      Convention `json:"origin"`
	Destination Convention `json:"destination"`
}

// Result holds a converted rate.
type Result struct {
	// Rate is the converted rate as a decimal fraction.
	Rate float64 `json:"rate"`
	// Percent is Rate expressed as a percentage.
	Percent float64 `json:"percent"`
	Label   string  `json:"label"`
	// AnnualEffective is the TEA pivot the conversion went through.
	AnnualEffective float64 `json:"annualEffective"`
	// PeriodicRate is the destination per-period effective due rate.
	PeriodicRate float64 `json:"periodicRate"`
}
