// Package rates converts interest rates between compounding conventions.
//
// Every conversion pivots through the annual effective rate (TEA): the origin
// rate is first reduced to a per-period effective due rate, compounded to a
// TEA, and the TEA is then re-expressed in the destination convention.
package rates

import (
	"fmt"
	"math"

	"github.com/iwvelando/rate-converter/pkg/mathutil"
)

// AnticipatedToDue converts a per-period anticipated rate into the equivalent
// per-period due rate.
func AnticipatedToDue(d float64) float64 {
	return d / (1 - d)
}

// DueToAnticipated converts a per-period due rate into the equivalent
// per-period anticipated rate.
func DueToAnticipated(i float64) float64 {
	return i / (1 + i)
}

// AnnualEffective compounds a per-period effective rate over n periods.
func AnnualEffective(periodic float64, n int) float64 {
	return math.Pow(1+periodic, float64(n)) - 1
}

// checkAnnualEffective rejects a TEA pivot that cannot be converted further.
// Non-negative inputs never reach -1; the check holds if negative rates are
// ever admitted.
func checkAnnualEffective(tea float64) error {
	if !mathutil.IsFinite(tea) {
		return NewValidationError(ErrMalformedInput, "", "invalid input")
	}
	if tea <= -1 {
		return NewValidationError(ErrImpossibleRate, "value",
			fmt.Sprintf("annual effective rate of %.4f%% is not possible", mathutil.ToPercent(tea)))
	}
	return nil
}

// PeriodicFromAnnual returns the per-period effective rate that compounds to
// tea over n periods.
func PeriodicFromAnnual(tea float64, n int) float64 {
	return math.Pow(1+tea, 1/float64(n)) - 1
}

// Convert re-expresses req.Value, stated in req.Origin, in req.Destination.
// Validation failures are returned as *ValidationError wrapping one of the
// package's sentinel kinds.
func Convert(req Request) (Result, error) {
	if err := validate(req); err != nil {
		return Result{}, err
	}

	nOrigin := periodTable[req.Origin.Period]
	nDest := periodTable[req.Destination.Period]

	periodic, err := originPeriodic(req.Value, req.Origin, nOrigin)
	if err != nil {
		return Result{}, err
	}

	tea := AnnualEffective(periodic, nOrigin)
	if err := checkAnnualEffective(tea); err != nil {
		return Result{}, err
	}

	destPeriodic := PeriodicFromAnnual(tea, nDest)

	var rate float64
	switch req.Destination.Type {
	case Effective:
		rate = destPeriodic
	case EffectiveAnnual:
		rate = tea
	case Nominal:
		if req.Destination.Timing == Anticipated {
			rate = DueToAnticipated(destPeriodic) * float64(nDest)
		} else {
			rate = destPeriodic * float64(nDest)
		}
	}

	if !mathutil.IsFinite(rate, destPeriodic) {
		return Result{}, NewValidationError(ErrMalformedInput, "", "invalid input")
	}

	return Result{
		Rate:            rate,
		Percent:         mathutil.ToPercent(rate),
		Label:           req.Destination.Label(),
		AnnualEffective: tea,
		PeriodicRate:    destPeriodic,
	}, nil
}

// originPeriodic reduces the origin rate to a per-period effective due rate.
func originPeriodic(value float64, origin Convention, n int) (float64, error) {
	switch origin.Type {
	case Effective:
		return value, nil
	case EffectiveAnnual:
		return PeriodicFromAnnual(value, n), nil
	}

	nominal := value / float64(n)
	if origin.Timing == Anticipated {
		if nominal >= 1 {
			return 0, NewValidationError(ErrRateTooLarge, "value",
				fmt.Sprintf("anticipated per-period rate of %.4f%% must be below 100%%", mathutil.ToPercent(nominal)))
		}
		return AnticipatedToDue(nominal), nil
	}
	return nominal, nil
}

func validate(req Request) error {
	if !mathutil.IsFinite(req.Value) {
		return NewValidationError(ErrMalformedInput, "value", "rate must be a finite number")
	}
	if req.Value < 0 {
		return NewValidationError(ErrNegativeRate, "value", "rate must not be negative")
	}

	sides := []struct {
		name string
		conv Convention
	}{
		{"origin", req.Origin},
		{"destination", req.Destination},
	}

	for _, side := range sides {
		if !side.conv.Period.Valid() {
			return NewValidationError(ErrInvalidPeriod, side.name+".period",
				fmt.Sprintf("unknown %s period %q", side.name, side.conv.Period))
		}
	}
	for _, side := range sides {
		if !side.conv.Type.Valid() {
			return NewValidationError(ErrMalformedInput, side.name+".type",
				fmt.Sprintf("unknown %s rate type %q", side.name, side.conv.Type))
		}
		if !side.conv.Timing.Valid() {
			return NewValidationError(ErrMalformedInput, side.name+".timing",
				fmt.Sprintf("unknown %s timing %q", side.name, side.conv.Timing))
		}
	}
	for _, side := range sides {
		if side.conv.Type.IsEffective() && side.conv.Timing != Due {
			return NewValidationError(ErrInvalidTiming, side.name+".timing",
				"effective rates may only be due, never anticipated")
		}
	}
	return nil
}
