package domain

import (
	"errors"
	"fmt"
)

var (
	ErrItemNotFound = errors.New("item not found")
)

// ValidationError reports a rejected input field. It is returned before
// any mutation is attempted.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
