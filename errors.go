// errors.go
package power

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInteger indicates a token is not a base-10 integer
	ErrInvalidInteger = errors.New("invalid integer")

	// ErrZeroNegativeExponent indicates zero was raised to a negative power
	ErrZeroNegativeExponent = errors.New("zero cannot be raised to a negative power")

	// ErrExponentTooLarge indicates the exponent exceeds the configured limit
	ErrExponentTooLarge = errors.New("exponent too large")
)

// Error wraps an error with additional context
type Error struct {
	Op  string // Operation that failed
	Arg string // Offending input if applicable
	Err error  // Underlying error
}

func (e *Error) Error() string {
	if e.Arg != "" {
		return fmt.Sprintf("%s %q: %v", e.Op, e.Arg, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
