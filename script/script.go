// Package script runs Starlark traces against a register file.
//
// A trace writes raw entry into A and B, canonicalizes, and checks the
// result:
//
//	write("A", "00050000000000")
//	write("B", POWER_ON_B)
//	canonicalize()
//	check("C", "05000000000998")
//
// Builtins: read(id), write(id, text), canonicalize(), reset(),
// overflow(positive=True), underflow() and check(id, text). Register ids
// are names ("A" .. "M"), and the wire format constants of the register
// file are predeclared.
package script

import (
	"fmt"
	"io"
	"log"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/bcdcalc/regfile"
)

// Script is the execution context for traces.
type Script struct {
	Verbose      bool                 // If set, logs every builtin call.
	RegisterFile *regfile.RegisterFile // Register file the trace drives.
	Output       io.Writer            // Destination of print(), or discarded if nil.
}

// NewScript creates a script context for a register file.
func NewScript(rf *regfile.RegisterFile) (sc *Script) {
	sc = &Script{
		RegisterFile: rf,
	}

	return
}

// Exec runs the trace src, which may be a string, []byte or io.Reader.
func (sc *Script) Exec(name string, src any) (globals starlark.StringDict, err error) {
	defer func() {
		if err != nil {
			err = &ErrScript{Name: name, Err: err}
		}
	}()

	thread := &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			if sc.Output != nil {
				fmt.Fprintln(sc.Output, msg)
			}
		},
	}
	opts := syntax.FileOptions{}

	globals, err = starlark.ExecFileOptions(&opts, thread, name, src, sc.predeclared())
	return
}

func (sc *Script) predeclared() (pred starlark.StringDict) {
	pred = starlark.StringDict{
		"read":         starlark.NewBuiltin("read", sc.read),
		"write":        starlark.NewBuiltin("write", sc.write),
		"canonicalize": starlark.NewBuiltin("canonicalize", sc.canonicalize),
		"reset":        starlark.NewBuiltin("reset", sc.reset),
		"overflow":     starlark.NewBuiltin("overflow", sc.overflow),
		"underflow":    starlark.NewBuiltin("underflow", sc.underflow),
		"check":        starlark.NewBuiltin("check", sc.check),
	}

	for key, value := range sc.RegisterFile.Defines() {
		pred[key] = starlark.String(value)
	}

	return
}

func (sc *Script) trace(b *starlark.Builtin, args starlark.Tuple) {
	if sc.Verbose {
		log.Printf("script: %v%v", b.Name(), args)
	}
}

func (sc *Script) read(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var name string
	err = starlark.UnpackArgs(b.Name(), args, kwargs, "id", &name)
	if err != nil {
		return
	}
	sc.trace(b, args)

	id, err := regfile.ParseId(name)
	if err != nil {
		return
	}

	value = starlark.String(sc.RegisterFile.Get(id).String())
	return
}

func (sc *Script) write(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var name, text string
	err = starlark.UnpackArgs(b.Name(), args, kwargs, "id", &name, "text", &text)
	if err != nil {
		return
	}
	sc.trace(b, args)

	id, err := regfile.ParseId(name)
	if err != nil {
		return
	}

	err = sc.RegisterFile.Write(id, text)
	if err != nil {
		return
	}

	value = starlark.None
	return
}

func (sc *Script) canonicalize(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	err = starlark.UnpackArgs(b.Name(), args, kwargs)
	if err != nil {
		return
	}
	sc.trace(b, args)

	sc.RegisterFile.Canonicalize()

	value = starlark.String(sc.RegisterFile.Get(regfile.REG_C).String())
	return
}

func (sc *Script) reset(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	err = starlark.UnpackArgs(b.Name(), args, kwargs)
	if err != nil {
		return
	}
	sc.trace(b, args)

	sc.RegisterFile.Reset()

	value = starlark.None
	return
}

func (sc *Script) overflow(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	positive := true
	err = starlark.UnpackArgs(b.Name(), args, kwargs, "positive?", &positive)
	if err != nil {
		return
	}
	sc.trace(b, args)

	sc.RegisterFile.Overflow(positive)

	value = starlark.None
	return
}

func (sc *Script) underflow(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	err = starlark.UnpackArgs(b.Name(), args, kwargs)
	if err != nil {
		return
	}
	sc.trace(b, args)

	sc.RegisterFile.Underflow()

	value = starlark.None
	return
}

func (sc *Script) check(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var name, text string
	err = starlark.UnpackArgs(b.Name(), args, kwargs, "id", &name, "text", &text)
	if err != nil {
		return
	}
	sc.trace(b, args)

	id, err := regfile.ParseId(name)
	if err != nil {
		return
	}

	actual := sc.RegisterFile.Get(id).String()
	if actual != text {
		err = &ErrMismatch{Id: id, Expected: text, Actual: actual}
		return
	}

	value = starlark.None
	return
}
