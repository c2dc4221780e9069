package order

import (
	"errors"
	"fmt"
)

var (
	ErrValidation  = errors.New("invalid order")
	ErrPersistence = errors.New("order store unavailable")
	ErrNotFound    = errors.New("order not found")
	ErrUnsupported = errors.New("operation not supported, remove the order and add it again")
)

// ValidationError reports the first customer or item field rejected before
// an order is submitted.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
