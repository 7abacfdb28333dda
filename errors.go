package cardsheet

import (
	"errors"
	"fmt"
)

// Sentinel errors for generation failures.
var (
	ErrNoCards       = errors.New("cardsheet: no card records in input")
	ErrInvalidOption = errors.New("cardsheet: invalid option")
)

// CardError describes why one face of one card was degraded.
type CardError struct {
	Slot int    // deck slot, 0-based
	Face string // "front" or "back"
	Op   string // step that failed, e.g. "image", "draw"
	Err  error  // underlying error
}

func (e *CardError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cardsheet: card %d %s %s: %v", e.Slot+1, e.Face, e.Op, e.Err)
	}
	return fmt.Sprintf("cardsheet: card %d %s %s: unknown error", e.Slot+1, e.Face, e.Op)
}

func (e *CardError) Unwrap() error {
	return e.Err
}

func invalidOption(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidOption, fmt.Sprintf(format, args...))
}
