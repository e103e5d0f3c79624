package regfile

import (
	"errors"

	"github.com/ezrec/bcdcalc/translate"
)

var f = translate.From

var (
	ErrNotWritable = errors.New(f("register not writable"))
	ErrIdInvalid   = errors.New(f("register id invalid"))
)

// ErrIdUnknown is returned for a register name that is not in the file.
type ErrIdUnknown string

func (err ErrIdUnknown) Error() string {
	return f("register %v unknown", string(err))
}
