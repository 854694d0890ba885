// descriptor.go defines the format descriptor negotiated on each stream.

// Package format provides the media format descriptor (a small typed attribute set).
package format

import (
	"fmt"
	"strings"

	"github.com/xaionaro-go/avgrayscale/types"
	"github.com/xaionaro-go/typing"
)

type FrameSize struct {
	Width  uint32
	Height uint32
}

func (s FrameSize) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Descriptor describes a media format. Every attribute is optional:
// partial descriptors are used while negotiating.
type Descriptor struct {
	MajorType     typing.Optional[types.MediaType]
	Subtype       typing.Optional[types.Subtype]
	FrameSize     typing.Optional[FrameSize]
	InterlaceMode typing.Optional[types.InterlaceMode]

	// DefaultStride is a cache of the computed default stride, it is not
	// compared by IsEqual.
	DefaultStride typing.Optional[int32]
}

// NewVideo returns a full video descriptor.
func NewVideo(
	subtype types.Subtype,
	width, height uint32,
) *Descriptor {
	return &Descriptor{
		MajorType:     typing.Opt(types.MediaTypeVideo),
		Subtype:       typing.Opt(subtype),
		FrameSize:     typing.Opt(FrameSize{Width: width, Height: height}),
		InterlaceMode: typing.Opt(types.InterlaceModeProgressive),
	}
}

// NewPartialVideo returns a descriptor with only the major type and the subtype set.
func NewPartialVideo(subtype types.Subtype) *Descriptor {
	return &Descriptor{
		MajorType: typing.Opt(types.MediaTypeVideo),
		Subtype:   typing.Opt(subtype),
	}
}

func (d *Descriptor) Clone() *Descriptor {
	if d == nil {
		return nil
	}
	cpy := *d
	return &cpy
}

// GetInterlaceMode returns the interlace mode, progressive if not set.
func (d *Descriptor) GetInterlaceMode() types.InterlaceMode {
	if !d.InterlaceMode.IsSet() {
		return types.InterlaceModeProgressive
	}
	return d.InterlaceMode.Get()
}

// IsEqual reports whether both descriptors describe the same format.
func (d *Descriptor) IsEqual(other *Descriptor) bool {
	if d == nil || other == nil {
		return d == other
	}
	if !optionalEqual(d.MajorType, other.MajorType) {
		return false
	}
	if !optionalEqual(d.Subtype, other.Subtype) {
		return false
	}
	if !optionalEqual(d.FrameSize, other.FrameSize) {
		return false
	}
	return d.GetInterlaceMode() == other.GetInterlaceMode()
}

func optionalEqual[T comparable](a, b typing.Optional[T]) bool {
	if a.IsSet() != b.IsSet() {
		return false
	}
	if !a.IsSet() {
		return true
	}
	return a.Get() == b.Get()
}

func (d *Descriptor) String() string {
	if d == nil {
		return "<nil>"
	}
	var parts []string
	if d.MajorType.IsSet() {
		parts = append(parts, "major:"+d.MajorType.Get().String())
	}
	if d.Subtype.IsSet() {
		parts = append(parts, "subtype:"+d.Subtype.Get().String())
	}
	if d.FrameSize.IsSet() {
		parts = append(parts, "size:"+d.FrameSize.Get().String())
	}
	if d.InterlaceMode.IsSet() {
		parts = append(parts, "interlace:"+d.InterlaceMode.Get().String())
	}
	if d.DefaultStride.IsSet() {
		parts = append(parts, fmt.Sprintf("stride:%d", d.DefaultStride.Get()))
	}
	return "{" + strings.Join(parts, " ") + "}"
}
