package engine

import (
	"errors"
	"fmt"
)

// ErrResourceExhausted reports that the process is over its memory budget.
var ErrResourceExhausted = errors.New("engine: resource exhausted")

// FailureClass groups fatal loop errors by recovery policy.
type FailureClass string

const (
	ClassResourceExhausted FailureClass = "resource_exhausted"
	ClassUnclassified      FailureClass = "unclassified"
)

// Classify maps any error escaping the loop to its failure class.
func Classify(err error) FailureClass {
	if errors.Is(err, ErrResourceExhausted) {
		return ClassResourceExhausted
	}
	return ClassUnclassified
}

// PanicError wraps a value recovered from a panicking loop.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("engine panic: %v", e.Value)
}

// Unwrap exposes a panicked error value so it can be classified.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
