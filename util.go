package huffpack

import (
	"fmt"
	mathbits "math/bits"
)

func log2uint32(x uint32) uint32 {
	if x == 0 {
		x = 1
	}
	return uint32(32 - mathbits.LeadingZeros32(x))
}

// escapeSymbol returns a printable form of sym for human-readable reports.
func escapeSymbol(sym Symbol) string {
	switch sym {
	case ' ':
		return "Space"
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case '\t':
		return `\t`
	}
	if sym < 0x20 || sym >= 0x7f {
		return fmt.Sprintf("0x%02x", byte(sym))
	}
	return string(rune(sym))
}
