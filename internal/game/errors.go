package game

import (
	"errors"
	"fmt"
)

// PreconditionError reports an argument outside an operation's domain.
type PreconditionError struct {
	// Op names the operation, e.g. "nimber".
	Op string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: precondition failed: %s", e.Op, e.Message)
}

// IsPrecondition returns true if err is or wraps a PreconditionError.
func IsPrecondition(err error) bool {
	var pe *PreconditionError
	return errors.As(err, &pe)
}

// must unwraps results of evaluator runs whose frames never fail.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
