package regfile

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/bcdcalc/register"
)

func doCanonicalize(t *testing.T, a, b string) (rf *RegisterFile) {
	assert := assert.New(t)

	rf = NewRegisterFile()
	assert.NoError(rf.Write(REG_A, a))
	assert.NoError(rf.Write(REG_B, b))
	rf.Canonicalize()

	return
}

func TestCanonicalize(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		a    string
		b    string
		c    string
	}){
		{"0.", POWER_ON_A, POWER_ON_B, "00000000000990"},
		{"1.5", "01500000000000", "02999999999999", "01500000000000"},
		{"0.5", "00500000000000", "02999999999999", "05000000000999"},
		{"0.05", "00050000000000", "02999999999999", "05000000000998"},
		{"123.", "01230000000000", "09929999999999", "01230000000002"},
		{"007.5", "00075000000000", "09929999999999", "07500000000000"},
		{"12.34E5", "01234000000005", "09299999999999", "01234000000006"},
		{"-1.5E-3", "91500000000903", "02999999999999", "91500000000997"},
		{"1E-99", "01000000000999", "02999999999999", "01000000000901"},
		{"9.999999999E99", OVERFLOW_A_POSITIVE, OVERFLOW_B, "09999999999099"},
		{"1234567890.", "01234567890000", "09999999999990", "01234567890009"},
	}

	for _, entry := range table {
		rf := doCanonicalize(t, entry.a, entry.b)
		assert.Equal(entry.c, rf.Get(REG_C).String(), entry.name)
		// No range error, so the raw entry is untouched.
		assert.Equal(entry.a, rf.Get(REG_A).String(), entry.name)
		assert.Equal(entry.b, rf.Get(REG_B).String(), entry.name)
	}
}

func TestCanonicalize_PowerOn(t *testing.T) {
	assert := assert.New(t)

	rf := NewRegisterFile()

	rf.Canonicalize()
	first := rf.Get(REG_C)
	rf.Canonicalize()
	assert.Equal(first, rf.Get(REG_C))
	assert.Equal("00000000000990", first.String())
}

func TestCanonicalize_Scratch(t *testing.T) {
	assert := assert.New(t)

	rf := NewRegisterFile()
	for n, id := range []Id{REG_D, REG_E, REG_F, REG_M} {
		assert.NoError(rf.Write(id, fmt.Sprintf("%014d", n+1)))
	}

	assert.NoError(rf.Write(REG_A, "01234000000099"))
	assert.NoError(rf.Write(REG_B, "09992999999999"))
	rf.Canonicalize()

	for n, id := range []Id{REG_D, REG_E, REG_F, REG_M} {
		assert.Equal(fmt.Sprintf("%014d", n+1), rf.Get(id).String(), id.String())
	}
}

func TestCanonicalize_Overflow(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		a    string
		b    string
		sign register.Nibble
	}){
		{"1234.E99", "01234000000099", "09992999999999", register.SIGN_POSITIVE},
		{"-1234.E99", "91234000000099", "09992999999999", register.SIGN_NEGATIVE},
		{"1.E150", "01000000000150", "02999999999999", register.SIGN_POSITIVE},
		{"-1.E150", "91000000000150", "02999999999999", register.SIGN_NEGATIVE},
		{"10.E99", "01000000000099", "09299999999999", register.SIGN_POSITIVE},
	}

	for _, entry := range table {
		rf := doCanonicalize(t, entry.a, entry.b)

		expected := OVERFLOW_A_POSITIVE
		if entry.sign == register.SIGN_NEGATIVE {
			expected = OVERFLOW_A_NEGATIVE
		}
		assert.Equal(expected, rf.Get(REG_A).String(), entry.name)
		assert.Equal(OVERFLOW_B, rf.Get(REG_B).String(), entry.name)
		assert.Equal(expected, rf.Get(REG_C).String(), entry.name)

		// The sentinel is a fixed point.
		c := rf.Get(REG_C)
		rf.Canonicalize()
		assert.Equal(expected, rf.Get(REG_A).String(), entry.name)
		assert.Equal(OVERFLOW_B, rf.Get(REG_B).String(), entry.name)
		assert.Equal(c, rf.Get(REG_C), entry.name)
	}
}

func TestCanonicalize_Underflow(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		a    string
		b    string
	}){
		{"0.000000001E-95", "00000000001995", "02999999999999"},
		{"-0.000000001E-95", "90000000001995", "02999999999999"},
		{"0.01E-99", "00010000000999", "02999999999999"},
	}

	for _, entry := range table {
		rf := doCanonicalize(t, entry.a, entry.b)

		assert.Equal(UNDERFLOW_A, rf.Get(REG_A).String(), entry.name)
		assert.Equal(UNDERFLOW_B, rf.Get(REG_B).String(), entry.name)
		assert.Equal("00000000000990", rf.Get(REG_C).String(), entry.name)

		rf.Canonicalize()
		assert.Equal(UNDERFLOW_A, rf.Get(REG_A).String(), entry.name)
		assert.Equal(UNDERFLOW_B, rf.Get(REG_B).String(), entry.name)
		assert.Equal("00000000000990", rf.Get(REG_C).String(), entry.name)
	}
}

func TestOverflow(t *testing.T) {
	assert := assert.New(t)

	rf := NewRegisterFile()

	rf.Overflow(true)
	assert.Equal(OVERFLOW_A_POSITIVE, rf.Get(REG_A).String())
	assert.Equal(OVERFLOW_B, rf.Get(REG_B).String())
	assert.Equal(OVERFLOW_A_POSITIVE, rf.Get(REG_C).String())

	rf.Overflow(false)
	assert.Equal(OVERFLOW_A_NEGATIVE, rf.Get(REG_A).String())
	assert.Equal(OVERFLOW_A_NEGATIVE, rf.Get(REG_C).String())
}

func TestUnderflow(t *testing.T) {
	assert := assert.New(t)

	rf := doCanonicalize(t, "01500000000000", "02999999999999")
	rf.Underflow()

	assert.Equal(UNDERFLOW_A, rf.Get(REG_A).String())
	assert.Equal(UNDERFLOW_B, rf.Get(REG_B).String())
	assert.Equal("00000000000990", rf.Get(REG_C).String())
}

func TestCanonicalize_SignIsolation(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		a string
		b string
	}){
		{"00000000000000", "02999999999999"},
		{"01500000000000", "02999999999999"},
		{"00050000000000", "02999999999999"},
		{"01234000000005", "09299999999999"},
		{"01500000000903", "02999999999999"},
		{"01234567890000", "09999999999990"},
	}

	for _, entry := range table {
		negative := "9" + entry.a[1:]

		pos := doCanonicalize(t, entry.a, entry.b).Get(REG_C)
		neg := doCanonicalize(t, negative, entry.b).Get(REG_C)

		assert.Equal(register.SIGN_POSITIVE, pos[register.SIGN], entry.a)
		assert.Equal(register.SIGN_NEGATIVE, neg[register.SIGN], entry.a)
		assert.Equal(pos[:register.SIGN], neg[:register.SIGN], entry.a)
	}
}

func TestCanonicalize_Verbose(t *testing.T) {
	assert := assert.New(t)

	rf := NewRegisterFile()
	rf.Verbose = true
	assert.NoError(rf.Write(REG_A, "01234000000099"))
	assert.NoError(rf.Write(REG_B, "09992999999999"))
	rf.Canonicalize()

	assert.Equal(OVERFLOW_A_POSITIVE, rf.Get(REG_C).String())
}
