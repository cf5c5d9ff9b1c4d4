// Package validation parses and validates raw conversion form input.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/iwvelando/rate-converter/pkg/constants"
	"github.com/iwvelando/rate-converter/pkg/rates"
)

// Form holds the raw values of a conversion form submission.
type Form struct {
	Value             string `json:"valor" form:"valor" validate:"required"`
	OriginType        string `json:"origen_tipo" form:"origen_tipo" validate:"required"`
	OriginPeriod      string `json:"origen_periodo" form:"origen_periodo" validate:"required"`
	OriginTiming      string `json:"tipo_tiempo_origen" form:"tipo_tiempo_origen" validate:"required"`
	DestinationType   string `json:"destino_tipo" form:"destino_tipo" validate:"required"`
	DestinationPeriod string `json:"destino_periodo" form:"destino_periodo" validate:"required"`
	DestinationTiming string `json:"tipo_tiempo_destino" form:"tipo_tiempo_destino" validate:"required"`

	// SharedTiming is the legacy single timing field.
	SharedTiming string `json:"tipo_tiempo,omitempty" form:"tipo_tiempo"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func formValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Lookup returns a raw field value by name, as url.Values.Get does.
type Lookup func(key string) string

// FormFromLookup builds a Form from a field lookup.
func FormFromLookup(get Lookup) Form {
	return Form{
		Value:             get(constants.FieldValue),
		OriginType:        get(constants.FieldOriginType),
		OriginPeriod:      get(constants.FieldOriginPeriod),
		OriginTiming:      get(constants.FieldOriginTiming),
		DestinationType:   get(constants.FieldDestinationType),
		DestinationPeriod: get(constants.FieldDestinationPeriod),
		DestinationTiming: get(constants.FieldDestinationTiming),
		SharedTiming:      get(constants.FieldSharedTiming),
	}
}

// WithSharedTiming fills missing timings from the legacy shared timing field.
func (f Form) WithSharedTiming() Form {
	shared := strings.TrimSpace(f.SharedTiming)
	if shared == "" {
		return f
	}
	if strings.TrimSpace(f.OriginTiming) == "" {
		f.OriginTiming = shared
	}
	if strings.TrimSpace(f.DestinationTiming) == "" {
		f.DestinationTiming = shared
	}
	return f
}

// Request converts the form into a conversion request. A negative rate is
// passed through untouched so that rates.Convert reports it ahead of any
// missing field.
func (f Form) Request() (rates.Request, error) {
	f = f.WithSharedTiming()

	value, err := ParsePercentage(f.Value)
	if err != nil {
		return rates.Request{}, err
	}

	if value >= 0 {
		if err := ValidateForm(f); err != nil {
			return rates.Request{}, err
		}
	}

	return rates.Request{
		Value: value,
		Origin: rates.Convention{
			Type:   rates.NormalizeRateType(f.OriginType),
			Period: rates.NormalizePeriod(f.OriginPeriod),
			Timing: rates.NormalizeTiming(f.OriginTiming),
		},
		Destination: rates.Convention{
			Type:   rates.NormalizeRateType(f.DestinationType),
			Period: rates.NormalizePeriod(f.DestinationPeriod),
			Timing: rates.NormalizeTiming(f.DestinationTiming),
		},
	}, nil
}

// ValidateForm checks that every required field is present.
func ValidateForm(f Form) error {
	trimmed := f
	for _, field := range []*string{
		&trimmed.Value, &trimmed.OriginType, &trimmed.OriginPeriod, &trimmed.OriginTiming,
		&trimmed.DestinationType, &trimmed.DestinationPeriod, &trimmed.DestinationTiming,
	} {
		*field = strings.TrimSpace(*field)
	}

	err := formValidator().Struct(trimmed)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		name := fieldErrs[0].Field()
		return rates.NewValidationError(rates.ErrMalformedInput, name,
			fmt.Sprintf("missing required field %s", name))
	}
	return rates.NewValidationError(rates.ErrMalformedInput, "", "invalid input")
}
