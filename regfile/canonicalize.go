package regfile

import (
	"log"

	"github.com/ezrec/bcdcalc/register"
)

const (
	EXPONENT_MAX = 99  // Largest representable exponent.
	EXPONENT_MIN = -99 // Smallest representable exponent.
)

var (
	overflowPositive = register.MustParseRegister(OVERFLOW_A_POSITIVE)
	overflowNegative = register.MustParseRegister(OVERFLOW_A_NEGATIVE)
	overflowB        = register.MustParseRegister(OVERFLOW_B)
	underflowA       = register.MustParseRegister(UNDERFLOW_A)
	underflowB       = register.MustParseRegister(UNDERFLOW_B)
)

// Canonicalize normalizes the raw entry in A and B into register C.
//
// The mantissa is copied to C with leading zeros suppressed, and the
// position of the decimal point is folded into the exponent so that C
// always has exactly one digit before the point. A negative exponent is
// stored in C as a three digit tens-complement.
//
// An exponent out of range replaces A and B with the overflow or underflow
// sentinel, which is canonicalized in turn.
func (rf *RegisterFile) Canonicalize() {
	a := &rf.register[REG_A]
	b := &rf.register[REG_B]
	c := register.Register{}

	negative := a[register.SIGN] == register.SIGN_NEGATIVE
	if negative {
		c[register.SIGN] = register.SIGN_NEGATIVE
	}

	// Three cursors move down in lockstep:
	//   ia - A mantissa digit being scanned.
	//   ib - B point marker, one nibble above ia. A marker at ib means the
	//        point sits just before digit ia.
	//   ic - next free C mantissa digit. Only moves once a significant
	//        digit has been seen, so ic <= ia.
	ia := register.MANTISSA_HI
	ib := register.SIGN
	ic := register.MANTISSA_HI

	foundDigit := false
	foundDecimal := false
	digitsBeforeDecimal := 0

	for range register.MANTISSA_DIGITS {
		if a[ia] != 0 {
			foundDigit = true
		}
		if b[ib] == register.MARK_POINT {
			foundDecimal = true
		}

		if foundDigit {
			c[ic] = a[ia]
			ic--
		}

		switch {
		case foundDigit && !foundDecimal:
			digitsBeforeDecimal++
		case foundDecimal && !foundDigit:
			digitsBeforeDecimal--
		}

		ia--
		ib--
	}

	// ia is at the exponent sign, which is also the top exponent digit.
	exponentNegative := a[ia] == register.SIGN_NEGATIVE
	exponent := 0
	for range register.EXPONENT_DIGITS {
		digit := int(a[ia])
		if ia == register.EXPONENT_SIGN && exponentNegative {
			digit = 0
		}
		exponent = exponent*10 + digit
		ia--
	}
	if exponentNegative {
		exponent = -exponent
	}

	adjusted := exponent + digitsBeforeDecimal - 1

	if rf.Verbose {
		log.Printf("regfile: canonicalize A:%v B:%v exponent:%d adjusted:%d", *a, *b, exponent, adjusted)
	}

	switch {
	case adjusted > EXPONENT_MAX:
		rf.Overflow(!negative)
		return
	case adjusted < EXPONENT_MIN:
		rf.Underflow()
		return
	}

	adjustedNegative := adjusted < 0
	if adjustedNegative {
		adjusted = -(adjusted + 1)
	}
	for n := range register.EXPONENT_DIGITS {
		digit := adjusted % 10
		if adjustedNegative {
			digit = 9 - digit
		}
		c[n] = register.Nibble(digit)
		adjusted /= 10
	}

	if rf.Verbose {
		log.Printf("regfile: C <- %v", c)
	}

	rf.register[REG_C] = c
}

// Overflow replaces A and B with the largest magnitude value of the given
// sign, and canonicalizes it.
func (rf *RegisterFile) Overflow(positive bool) {
	if rf.Verbose {
		log.Printf("regfile: overflow positive:%v", positive)
	}

	if positive {
		rf.register[REG_A] = overflowPositive
	} else {
		rf.register[REG_A] = overflowNegative
	}
	rf.register[REG_B] = overflowB

	rf.Canonicalize()
}

// Underflow replaces A and B with zero, and canonicalizes it.
func (rf *RegisterFile) Underflow() {
	if rf.Verbose {
		log.Printf("regfile: underflow")
	}

	rf.register[REG_A] = underflowA
	rf.register[REG_B] = underflowB

	rf.Canonicalize()
}
