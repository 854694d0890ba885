// subtype.go defines the Subtype (pixel layout) identifiers.

package types

import (
	"fmt"
	"strings"
)

// Subtype identifies a pixel layout by its FourCC code.
type Subtype uint32

// FourCC packs four characters into a Subtype, first character in the lowest byte.
func FourCC(a, b, c, d byte) Subtype {
	return Subtype(uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24)
}

const (
	SubtypeUndefined = Subtype(0)
	SubtypeNV12      = Subtype('N' | 'V'<<8 | '1'<<16 | '2'<<24)
	SubtypeYUY2      = Subtype('Y' | 'U'<<8 | 'Y'<<16 | '2'<<24)
	SubtypeUYVY      = Subtype('U' | 'Y'<<8 | 'V'<<16 | 'Y'<<24)
	SubtypeI420      = Subtype('I' | '4'<<8 | '2'<<16 | '0'<<24)
	SubtypeRGB32     = Subtype(22)
)

// PreferredSubtypes returns the supported subtypes in the order of preference.
func PreferredSubtypes() []Subtype {
	return []Subtype{
		SubtypeNV12,
		SubtypeYUY2,
		SubtypeUYVY,
	}
}

func (s Subtype) IsSupported() bool {
	for _, supported := range PreferredSubtypes() {
		if s == supported {
			return true
		}
	}
	return false
}

// IsPacked422 returns true for the packed 4:2:2 layouts (two bytes per pixel).
func (s Subtype) IsPacked422() bool {
	return s == SubtypeYUY2 || s == SubtypeUYVY
}

func (s Subtype) String() string {
	switch s {
	case SubtypeUndefined:
		return "undefined"
	case SubtypeRGB32:
		return "RGB32"
	}
	var b [4]byte
	for i := range b {
		b[i] = byte(uint32(s) >> (8 * i))
		if b[i] < 0x20 || b[i] > 0x7e {
			return fmt.Sprintf("Subtype(0x%08X)", uint32(s))
		}
	}
	return string(b[:])
}

// SubtypeFromString parses a FourCC string (case-insensitive).
func SubtypeFromString(s string) (Subtype, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 4 {
		return SubtypeUndefined, fmt.Errorf("a FourCC must be exactly 4 characters, got %q", s)
	}
	return FourCC(s[0], s[1], s[2], s[3]), nil
}
