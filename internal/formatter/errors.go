package formatter

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupported = errors.New("not supported")
	ErrNoFeature   = errors.New("no feature has been reported")
	ErrNoElement   = errors.New("no background or scenario has been reported")
	ErrNoStep      = errors.New("no step has been reported")
)

// WriteError is returned by EOF when the document could not be written.
type WriteError struct {
	Sink string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write JSON to %s: %v", e.Sink, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
