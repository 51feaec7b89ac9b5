package codingtree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// MaxCodeSize is the longest Code, in bits, that can be represented.
const MaxCodeSize = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The first bit is the most
	// significant of the Size low-order bits of Bits.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	assert.Assertf(size <= MaxCodeSize, "size %d > MaxCodeSize %d", size, MaxCodeSize)
	if size < MaxCodeSize {
		bits &= (uint64(1) << size) - 1
	}
	return Code{Size: size, Bits: bits}
}

// ParseCode parses a string of '0' and '1' characters into a Code.
func ParseCode(str string) (Code, error) {
	if len(str) > MaxCodeSize {
		return Code{}, fmt.Errorf("code %q is longer than %d bits", str, MaxCodeSize)
	}
	var hc Code
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
			hc = hc.Append(0)
		case '1':
			hc = hc.Append(1)
		default:
			return Code{}, fmt.Errorf("invalid character %q at index %d in code %q", str[i], i, str)
		}
	}
	return hc, nil
}

// Append returns the Code with one more bit added to the end.
func (hc Code) Append(bit uint) Code {
	assert.Assertf(hc.Size < MaxCodeSize, "cannot extend a %d-bit code", hc.Size)
	assert.Assertf(bit <= 1, "bit %d is not 0 or 1", bit)
	return Code{Size: hc.Size + 1, Bits: (hc.Bits << 1) | uint64(bit)}
}

// Bit returns the i'th bit of the Code, counting from 0 at the first bit.
func (hc Code) Bit(i byte) uint {
	assert.Assertf(i < hc.Size, "bit index %d out of range for %d-bit code", i, hc.Size)
	return uint(hc.Bits>>(hc.Size-1-i)) & 1
}

// HasPrefix returns true iff prefix is a (not necessarily proper) prefix of
// this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.Bits>>(hc.Size-prefix.Size) == prefix.Bits
}

// Digits returns the bits of this Code as a string of '0' and '1' characters.
func (hc Code) Digits() string {
	if hc.Size == 0 {
		return ""
	}
	str := strconv.FormatUint(hc.Bits, 2)
	if pad := int(hc.Size) - len(str); pad > 0 {
		str = strings.Repeat("0", pad) + str
	}
	return str
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(hc.Digits())
}

var _ fmt.Stringer = Code{}
