package regfile

import (
	"strings"
)

// Id names a register in the register file.
type Id int

//go:generate go tool stringer -linecomment -type=Id
const (
	REG_A = Id(0) // A
	REG_B = Id(1) // B
	REG_C = Id(2) // C
	REG_D = Id(3) // D
	REG_E = Id(4) // E
	REG_F = Id(5) // F
	REG_M = Id(6) // M

	REG_COUNT = 7 // Number of registers in the file.
)

// Ids returns all register identifiers, in file order.
func Ids() []Id {
	return []Id{REG_A, REG_B, REG_C, REG_D, REG_E, REG_F, REG_M}
}

// ParseId returns the register named by name, ignoring case.
func ParseId(name string) (id Id, err error) {
	for _, id = range Ids() {
		if strings.EqualFold(id.String(), name) {
			return
		}
	}

	id = -1
	err = ErrIdUnknown(name)
	return
}

// Valid is true if the id names a register in the file.
func (id Id) Valid() bool {
	return id >= REG_A && id < REG_COUNT
}
