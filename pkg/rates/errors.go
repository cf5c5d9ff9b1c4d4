package rates

import "errors"

// Sentinel error kinds. Every error returned by Convert wraps exactly one of
// these.
var (
	ErrNegativeRate   = errors.New("negative rate")
	ErrInvalidPeriod  = errors.New("invalid period")
	ErrInvalidTiming  = errors.New("invalid timing")
	ErrRateTooLarge   = errors.New("rate too large")
	ErrImpossibleRate = errors.New("impossible rate")
	ErrMalformedInput = errors.New("malformed input")
)

// ValidationError reports why a conversion request was rejected.
type ValidationError struct {
	Kind    error
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// NewValidationError builds a ValidationError of the given kind.
func NewValidationError(kind error, field, msg string) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Message: msg}
}

// Kind returns the sentinel kind wrapped by err, or nil if err does not wrap
// one of the package's error kinds.
func Kind(err error) error {
	for _, kind := range []error{
		ErrNegativeRate,
		ErrInvalidPeriod,
		ErrInvalidTiming,
		ErrRateTooLarge,
		ErrImpossibleRate,
		ErrMalformedInput,
	} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

// Message returns the user-facing message for err. Errors that do not come
// from this package are reported as invalid input.
func Message(err error) string {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	return "invalid input"
}
