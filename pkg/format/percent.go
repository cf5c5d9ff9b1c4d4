// Package format renders converted rates for display.
package format

import "github.com/shopspring/decimal"

// Percent returns a percentage rounded half away from zero to the given
// number of decimals (e.g., "19.5618").
func Percent(percent float64, places int32) string {
	return decimal.NewFromFloat(percent).StringFixed(places)
}

// PercentWithSign returns Percent followed by a percent sign (e.g., "19.56%").
func PercentWithSign(percent float64, places int32) string {
	return Percent(percent, places) + "%"
}
