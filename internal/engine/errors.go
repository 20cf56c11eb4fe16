package engine

// ValidationError represents a parameter error detected before any search
// work begins. No partial output is ever produced for a validation failure.
//
// The message is user-facing: the CLI prints it verbatim on standard
// output, matching the original generator programs.
type ValidationError struct {
	// Code identifies the error category.
	Code ValidationCode

	// Message is the human-readable description.
	Message string
}

// ValidationCode categorizes validation errors.
type ValidationCode string

const (
	// ErrCodeTupleSize indicates tuple_size < 3 (or not a number).
	ErrCodeTupleSize ValidationCode = "TUPLE_SIZE"

	// ErrCodeBadInteger indicates a bound that is not a decimal integer.
	ErrCodeBadInteger ValidationCode = "BAD_INTEGER"

	// ErrCodeBMinRange indicates b_min < 1.
	ErrCodeBMinRange ValidationCode = "B_MIN_RANGE"

	// ErrCodeRangeInverted indicates b_min > b_max.
	ErrCodeRangeInverted ValidationCode = "RANGE_INVERTED"

	// ErrCodeCeilingExceeded indicates b_max above the exhaustive
	// engine's fixed ceiling.
	ErrCodeCeilingExceeded ValidationCode = "B_MAX_CEILING"
)

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(code ValidationCode, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}
