package register

import (
	"errors"

	"github.com/ezrec/bcdcalc/translate"
)

var f = translate.From

var (
	// Register format errors
	ErrFormatLength = errors.New(f("must be exactly 14 digits"))
	ErrFormatDigit  = errors.New(f("non-decimal digit"))
)

// ErrFormat reports a register text that is not in the wire format.
type ErrFormat struct {
	Text  string
	Index int // Character index of a bad digit, or -1.
	Err   error
}

func (err *ErrFormat) Error() string {
	if err.Index >= 0 {
		return f("register '%v' position %d %v", err.Text, err.Index, err.Err)
	}
	return f("register '%v' %v", err.Text, err.Err)
}

func (err *ErrFormat) Unwrap() error {
	return err.Err
}
