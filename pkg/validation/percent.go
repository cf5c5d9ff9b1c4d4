package validation

import (
	"fmt"
	"strings"

	"github.com/iwvelando/rate-converter/pkg/constants"
	"github.com/iwvelando/rate-converter/pkg/rates"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromFloat(constants.PercentageMultiplier)

// maxExponent bounds the decimal exponent accepted from user input. Scaling a
// decimal builds 10^exp as a big integer, so "1e200000000" would otherwise
// stall the request.
const maxExponent = 400

// ParsePercentage parses a percentage such as "18", "18.5", "18,5" or "18 %"
// and returns it as a decimal fraction (0.18 for "18").
func ParsePercentage(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimSpace(strings.TrimSuffix(trimmed, "%"))
	if trimmed == "" {
		return 0, rates.NewValidationError(rates.ErrMalformedInput, constants.FieldValue,
			"enter a rate as a number")
	}
	if !strings.Contains(trimmed, ".") {
		trimmed = strings.Replace(trimmed, ",", ".", 1)
	}

	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return 0, rates.NewValidationError(rates.ErrMalformedInput, constants.FieldValue,
			fmt.Sprintf("%q is not a valid number", s))
	}
	if exp := d.Exponent(); exp > maxExponent || exp < -maxExponent {
		return 0, rates.NewValidationError(rates.ErrMalformedInput, constants.FieldValue,
			fmt.Sprintf("%q is out of range", s))
	}

	value, _ := d.Div(hundred).Float64()
	return value, nil
}
