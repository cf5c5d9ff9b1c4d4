// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/rate-converter/pkg/constants"
)

// IsFinite reports whether every value is neither NaN nor infinite.
func IsFinite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// ToPercent converts a decimal fraction to a percentage.
func ToPercent(val float64) float64 {
	return val * constants.PercentageMultiplier
}
