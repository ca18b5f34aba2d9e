package market

import (
	"errors"
	"fmt"
)

// ErrProjectNotFound is returned when a purchase references a project that
// does not exist. The token collection is left untouched.
var ErrProjectNotFound = errors.New("project not found")

// ValidationError reports which form field failed validation so the caller
// can surface it next to the offending input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
