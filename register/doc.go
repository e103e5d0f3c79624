// Package register implements the 56-bit BCD registers of the calculator.
//
// A register is 14 nibbles. Nibble 13 is the mantissa sign (0 positive, 9
// negative), nibbles 12..3 hold the ten mantissa digits with the most
// significant digit at 12, and nibbles 2..0 hold the exponent sign and
// magnitude. The wire format is a 14 character decimal string, most
// significant nibble first.
package register
