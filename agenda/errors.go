package agenda

import (
	"errors"
	"fmt"
	"time"
)

// UsageError a bad command line combination, nothing is written
type UsageError struct {
	Message string
	Err     error
}

func (e *UsageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err)
	}
	return e.Message
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// Usage creates a usage error
func Usage(format string, args ...interface{}) error {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// UsageWrap wraps err as a usage error
func UsageWrap(err error, message string) error {
	return &UsageError{Message: message, Err: err}
}

// IsUsage checks if the error is a usage error
func IsUsage(err error) bool {
	var usage *UsageError
	return errors.As(err, &usage)
}

// ValidateRange the last day must be after the first day
func ValidateRange(first, last time.Time) error {
	if !last.After(first) {
		return Usage("First date must be before last date (%s >= %s)",
			first.Format("01/02/2006"), last.Format("01/02/2006"))
	}
	return nil
}
