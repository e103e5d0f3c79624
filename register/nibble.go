package register

// Nibble is a 4-bit BCD storage cell.
type Nibble uint8

const (
	NIBBLE_MASK = Nibble(0xf) // Largest value a nibble can hold.
)

const hexDigits = "0123456789ABCDEF"

// ParseDigit converts a decimal digit character to a nibble.
func ParseDigit(ch byte) (value Nibble, err error) {
	if ch < '0' || ch > '9' {
		err = ErrFormatDigit
		return
	}

	value = Nibble(ch - '0')
	return
}

// Hex returns the nibble as a single hexadecimal character.
func (n Nibble) Hex() byte {
	return hexDigits[n&NIBBLE_MASK]
}

// String returns the nibble as a single hexadecimal character.
func (n Nibble) String() string {
	return string(n.Hex())
}
