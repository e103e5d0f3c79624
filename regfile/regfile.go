// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package regfile implements the calculator register file and the
// canonicalization of raw keyboard entry into a normalized register.
//
// Registers A and B hold raw entry: A carries the mantissa digits in entry
// order, the mantissa sign and the entered exponent; B carries, one nibble
// ahead of the matching A digit, the decimal point marker. Canonicalize
// derives register C from them. D, E, F and M are scratch registers.
//
// A RegisterFile has no internal locking. Every mutation must come from a
// single owner; Canonicalize reads A and B and writes C (or A and B) in a
// sequence that is not atomic.
package regfile

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/bcdcalc/internal"
	"github.com/ezrec/bcdcalc/register"
)

// Wire format literals for the raw entry registers.
const (
	POWER_ON_A = "00000000000000" // "0." with a positive sign.
	POWER_ON_B = "02999999999999" // Point after the first digit.

	OVERFLOW_A_POSITIVE = "09999999999099" // +9.999999999E99
	OVERFLOW_A_NEGATIVE = "99999999999099" // -9.999999999E99
	OVERFLOW_B          = "02000000000000"

	UNDERFLOW_A = POWER_ON_A
	UNDERFLOW_B = POWER_ON_B
)

var _power_on_defines = map[string]string{
	"POWER_ON_A": POWER_ON_A,
	"POWER_ON_B": POWER_ON_B,
}

var _sentinel_defines = map[string]string{
	"OVERFLOW_A_POSITIVE": OVERFLOW_A_POSITIVE,
	"OVERFLOW_A_NEGATIVE": OVERFLOW_A_NEGATIVE,
	"OVERFLOW_B":          OVERFLOW_B,
	"UNDERFLOW_A":         UNDERFLOW_A,
	"UNDERFLOW_B":         UNDERFLOW_B,
}

var (
	powerOnA = register.MustParseRegister(POWER_ON_A)
	powerOnB = register.MustParseRegister(POWER_ON_B)
)

// RegisterFile is the set of registers of the calculator.
type RegisterFile struct {
	Verbose bool // Set to enable verbose logging.

	register [REG_COUNT]register.Register
}

// NewRegisterFile creates a register file in the power-on state.
func NewRegisterFile() (rf *RegisterFile) {
	rf = &RegisterFile{}
	rf.Reset()

	return
}

// Reset returns A and B to the power-on pattern, and recomputes C.
// The scratch registers are not changed.
func (rf *RegisterFile) Reset() {
	if rf.Verbose {
		log.Printf("regfile: reset")
	}

	rf.register[REG_A] = powerOnA
	rf.register[REG_B] = powerOnB
	rf.Canonicalize()
}

// Get returns a copy of a register.
func (rf *RegisterFile) Get(id Id) register.Register {
	return rf.register[id]
}

// Put replaces a register. Register C is only written by canonicalization.
func (rf *RegisterFile) Put(id Id, reg register.Register) (err error) {
	switch {
	case !id.Valid():
		err = ErrIdInvalid
		return
	case id == REG_C:
		err = ErrNotWritable
		return
	}

	if rf.Verbose {
		log.Printf("regfile: %v <- %v", id, reg)
	}

	rf.register[id] = reg
	return
}

// Write replaces a register from its wire format text.
func (rf *RegisterFile) Write(id Id, text string) (err error) {
	reg, err := register.ParseRegister(text)
	if err != nil {
		return
	}

	return rf.Put(id, reg)
}

// All returns an iterator over the registers, in file order.
func (rf *RegisterFile) All() iter.Seq2[Id, register.Register] {
	return func(yield func(Id, register.Register) bool) {
		for _, id := range Ids() {
			if !yield(id, rf.register[id]) {
				return
			}
		}
	}
}

// Defines returns the named wire format constants of the register file.
func (rf *RegisterFile) Defines() iter.Seq2[string, string] {
	return internal.Concat2(maps.All(_power_on_defines), maps.All(_sentinel_defines))
}

// String returns the register file state as a string.
func (rf *RegisterFile) String() (text string) {
	for id, reg := range rf.All() {
		text += fmt.Sprintf("% 5s: %v\n", id, reg)
	}

	return
}
