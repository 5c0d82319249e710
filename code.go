package huffpack

import (
	"fmt"
	"strings"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

const codeWords = 4

// Code represents a sequence of bits, i.e. the path from the root of a Huffman
// tree down to one of its leaves.
//
// Code values are comparable and may be used as map keys.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The first bit is the most
	// significant bit of Bits[0], the 65th bit is the most significant bit
	// of Bits[1], and so on.  Bits past Size are always zero.
	Bits [codeWords]uint64
}

// MakeCode is a convenience function that constructs a Code of up to 64 bits.
// The bits are read from the low-order end of bits, most significant first,
// so MakeCode(3, 0x5) is the Code "101".
func MakeCode(size byte, bits uint64) Code {
	assert.Assertf(size <= 64, "MakeCode size %d > 64", size)
	var hc Code
	for i := size; i > 0; i-- {
		hc = hc.Append((bits>>(i-1))&1 != 0)
	}
	return hc
}

// ParseCode parses a string of '0' and '1' characters into a Code.
func ParseCode(str string) (Code, error) {
	if len(str) > maxBitsPerCode {
		return Code{}, errors.Errorf("code %q is too long: %d bits, max %d", str, len(str), maxBitsPerCode)
	}
	var hc Code
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
			hc = hc.Append(false)
		case '1':
			hc = hc.Append(true)
		default:
			return Code{}, errors.Errorf("invalid character %q at index %d in code %q", str[i], i, str)
		}
	}
	return hc, nil
}

// Append returns a copy of this Code with one more bit added at the end.
func (hc Code) Append(bit bool) Code {
	assert.Assertf(hc.Size < maxBitsPerCode, "code already holds %d bits, max %d", hc.Size, maxBitsPerCode)
	if bit {
		hc.Bits[hc.Size/64] |= uint64(1) << (63 - hc.Size%64)
	}
	hc.Size++
	return hc
}

// Bit returns the i'th bit of this Code, counting from 0.
func (hc Code) Bit(i byte) bool {
	assert.Assertf(i < hc.Size, "bit index %d out of range for code of size %d", i, hc.Size)
	return hc.Bits[i/64]&(uint64(1)<<(63-i%64)) != 0
}

// HasPrefix returns true iff prefix is a (not necessarily proper) prefix of
// this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	for i := byte(0); i < prefix.Size; i++ {
		if hc.Bit(i) != prefix.Bit(i) {
			return false
		}
	}
	return true
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return fmt.Sprintf("%q", hc.Text())
}

// Text returns the bits of this Code as a plain string of '0' and '1'.
func (hc Code) Text() string {
	var sb strings.Builder
	sb.Grow(int(hc.Size))
	for i := byte(0); i < hc.Size; i++ {
		if hc.Bit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

var _ fmt.Stringer = Code{}
