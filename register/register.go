// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package register

import (
	"fmt"
)

// Register layout.
const (
	SIZE = 14 // Nibbles in a register.

	SIGN            = 13 // Mantissa sign nibble.
	MANTISSA_HI     = 12 // Most significant mantissa digit.
	MANTISSA_LO     = 3  // Least significant mantissa digit.
	MANTISSA_DIGITS = MANTISSA_HI - MANTISSA_LO + 1
	EXPONENT_SIGN   = 2 // Exponent sign, also the top exponent digit.
	EXPONENT_DIGITS = EXPONENT_SIGN + 1
)

// Nibble values with a hardware meaning in a sign or marker position.
const (
	SIGN_POSITIVE = Nibble(0) // Positive mantissa or exponent.
	SIGN_NEGATIVE = Nibble(9) // Negative mantissa or exponent.
	MARK_POINT    = Nibble(2) // Decimal point marker in register B.
	MARK_FILL     = Nibble(9) // No marker here, in register B.
)

// Register is a single 56-bit BCD register. Index 0 is the least
// significant nibble.
type Register [SIZE]Nibble

// ParseRegister converts a 14 digit wire format string, most significant
// digit first, to a register.
func ParseRegister(text string) (reg Register, err error) {
	if len(text) != SIZE {
		err = &ErrFormat{Text: text, Index: -1, Err: ErrFormatLength}
		return
	}

	for n := range SIZE {
		var value Nibble
		value, err = ParseDigit(text[n])
		if err != nil {
			err = &ErrFormat{Text: text, Index: n, Err: err}
			return
		}
		reg[SIZE-1-n] = value
	}

	return
}

// MustParseRegister is ParseRegister for constant texts; it panics on error.
func MustParseRegister(text string) (reg Register) {
	reg, err := ParseRegister(text)
	if err != nil {
		panic(err)
	}

	return
}

// String returns the register in wire format. Nibbles above 9 never
// occur in a consistent register, but would render as A-F.
func (reg Register) String() string {
	var text [SIZE]byte
	for n := range SIZE {
		text[n] = reg[SIZE-1-n].Hex()
	}
	return string(text[:])
}

// Get returns the nibble at index.
func (reg *Register) Get(index int) Nibble {
	return reg[index]
}

// Set updates the nibble at index.
func (reg *Register) Set(index int, value Nibble) {
	if index < 0 || index >= SIZE {
		panic(fmt.Sprintf("register: index %d out of range", index))
	}
	if value > NIBBLE_MASK {
		panic(fmt.Sprintf("register: nibble 0x%x out of range", uint8(value)))
	}

	reg[index] = value
}

// Digits returns the nibbles most significant first.
func (reg Register) Digits() (digits [SIZE]Nibble) {
	for n := range SIZE {
		digits[n] = reg[SIZE-1-n]
	}
	return
}

// Negative is true if the mantissa sign is set.
func (reg Register) Negative() bool {
	return reg[SIGN] == SIGN_NEGATIVE
}
