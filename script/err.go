package script

import (
	"github.com/ezrec/bcdcalc/regfile"
	"github.com/ezrec/bcdcalc/translate"
)

var f = translate.From

// ErrScript indicates the script that failed.
type ErrScript struct {
	Name string
	Err  error
}

func (err *ErrScript) Error() string {
	return f("%v: %v", err.Name, err.Err)
}

func (err *ErrScript) Unwrap() error {
	return err.Err
}

// ErrMismatch is raised by check() when a register does not hold the
// expected text.
type ErrMismatch struct {
	Id       regfile.Id
	Expected string
	Actual   string
}

func (err *ErrMismatch) Error() string {
	return f("register %v is %v, expected %v", err.Id, err.Actual, err.Expected)
}
