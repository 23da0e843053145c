package errors

import "fmt"

// InvalidStateError reports stored data that breaks a domain invariant,
// such as a place row that no longer validates.
type InvalidStateError struct {
	msg   string
	cause error
}

func NewInvalidStateError(msg string, cause error) *InvalidStateError {
	return &InvalidStateError{msg: msg, cause: cause}
}

func (e *InvalidStateError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return fmt.Sprintf("%s: %v", e.msg, e.cause)
}

func (e *InvalidStateError) Unwrap() error {
	return e.cause
}

type NilArgumentError struct {
	argument string
}

func NewNilArgumentError(argument string) *NilArgumentError {
	return &NilArgumentError{argument: argument}
}

func (e *NilArgumentError) Error() string {
	return fmt.Sprintf("argument '%s' must not be nil", e.argument)
}
