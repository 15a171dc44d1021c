package service

import (
	"errors"
	"strings"
)

// Sentinel errors mapped to HTTP statuses by the handler layer.
var (
	ErrNotFound              = errors.New("record not found")
	ErrNoActiveConfig        = errors.New("no active tax refund configuration")
	ErrDuplicateRefundPeriod = errors.New("a tax refund already exists for this enterprise and period")
)

// ValidationError reports which input fields violated their constraints
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid fields: " + strings.Join(e.Fields, ", ")
}

// AsValidationError unwraps err into a *ValidationError if it is one
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
