package types

import "fmt"

type InterlaceMode uint32

const (
	InterlaceModeUnknown                     = InterlaceMode(0)
	InterlaceModeFieldInterleavedUpperFirst  = InterlaceMode(1)
	InterlaceModeProgressive                 = InterlaceMode(2)
	InterlaceModeFieldInterleavedLowerFirst  = InterlaceMode(3)
	InterlaceModeFieldSingleUpper            = InterlaceMode(4)
	InterlaceModeFieldSingleLower            = InterlaceMode(5)
	InterlaceModeMixedInterlaceOrProgressive = InterlaceMode(6)
)

// IsSingleField returns true if each buffer carries only one field of a frame.
func (m InterlaceMode) IsSingleField() bool {
	return m == InterlaceModeFieldSingleUpper || m == InterlaceModeFieldSingleLower
}

func (m InterlaceMode) String() string {
	switch m {
	case InterlaceModeUnknown:
		return "unknown"
	case InterlaceModeFieldInterleavedUpperFirst:
		return "interleaved-upper-first"
	case InterlaceModeProgressive:
		return "progressive"
	case InterlaceModeFieldInterleavedLowerFirst:
		return "interleaved-lower-first"
	case InterlaceModeFieldSingleUpper:
		return "single-upper"
	case InterlaceModeFieldSingleLower:
		return "single-lower"
	case InterlaceModeMixedInterlaceOrProgressive:
		return "mixed"
	default:
		return fmt.Sprintf("InterlaceMode(%d)", uint32(m))
	}
}
