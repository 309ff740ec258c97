package source

import (
	"errors"
	"fmt"
)

// TransientError is a network-level failure reaching the deployment
// service. Callers are expected to retry; the tracker never surfaces it.
type TransientError struct {
	Op  string
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("transient %s failure: %v", e.Op, e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// NotFoundError means the named stack does not exist. Before a deployment
// starts this is a valid answer ("nothing existed yet"); mid-operation it
// means the stack is gone.
type NotFoundError struct {
	Stack string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("stack %s not found", e.Stack)
}

// IsTransient reports whether err is a retryable transport failure.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}

// IsNotFound reports whether err means the stack does not exist.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
