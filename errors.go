package inquiry

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrOperationCanceled is returned when the user presses Esc or Ctrl+C.
	ErrOperationCanceled = errors.New("operation canceled by user")
	// ErrEmptyOptions is returned when a list prompt is built without options.
	ErrEmptyOptions = errors.New("available options can not be empty")
	// ErrInvalidDefault is returned when a default index or starting cursor
	// does not point into the option list.
	ErrInvalidDefault = errors.New("default index out of range")
	// ErrInvalidToken is returned when a Confirm token is not a single
	// character or both tokens are the same character.
	ErrInvalidToken = errors.New("confirm tokens must be two distinct characters")
)

// TerminalError reports a failure of the underlying terminal: entering or
// leaving raw mode, reading a key or writing a frame. It is fatal to the
// current prompt and is never confused with a validation failure.
type TerminalError struct {
	Op  string // "raw mode", "read", "write", "restore"
	Err error
}

func (e *TerminalError) Error() string {
	return fmt.Sprintf("terminal %s: %v", e.Op, e.Err)
}

func (e *TerminalError) Unwrap() error {
	return e.Err
}

func terminalError(op string, err error) error {
	if err == nil {
		return nil
	}
	var te *TerminalError
	if errors.As(err, &te) {
		return err
	}
	return &TerminalError{Op: op, Err: err}
}
