// negotiator.go implements the input/output format negotiation.

// Package negotiator holds the formats of the input and the output streams,
// validates candidate formats and derives the frame geometry.
//
// Negotiator is not safe for concurrent use; the owner serializes calls.
package negotiator

import (
	"fmt"

	"github.com/xaionaro-go/avgrayscale/format"
	"github.com/xaionaro-go/avgrayscale/types"
)

type Negotiator struct {
	input    *format.Descriptor
	output   *format.Descriptor
	geometry FrameGeometry
}

func New() *Negotiator {
	return &Negotiator{}
}

func (n *Negotiator) get(role Role) *format.Descriptor {
	if role == RoleInput {
		return n.input
	}
	return n.output
}

// Current returns a copy of the format of the role.
func (n *Negotiator) Current(role Role) (*format.Descriptor, error) {
	d := n.get(role)
	if d == nil {
		return nil, types.ErrTypeNotSet{}
	}
	return d.Clone(), nil
}

func (n *Negotiator) IsSet(role Role) bool {
	return n.get(role) != nil
}

func (n *Negotiator) BothSet() bool {
	return n.input != nil && n.output != nil
}

// Geometry returns the geometry derived from the current input format.
func (n *Negotiator) Geometry() FrameGeometry {
	return n.geometry
}

// Check validates the candidate for the role without changing anything.
// A nil candidate (clearing the format) is always acceptable.
func (n *Negotiator) Check(role Role, candidate *format.Descriptor) error {
	if candidate == nil {
		return nil
	}

	if opposite := n.get(role.Opposite()); opposite != nil {
		if !candidate.IsEqual(opposite) {
			return types.ErrInvalidFormat{Err: fmt.Errorf("the %s format %s does not match the %s format %s", role, candidate, role.Opposite(), opposite)}
		}
		return nil
	}

	return CheckMediaType(candidate)
}

// CheckMediaType validates a format regardless of the opposite stream.
func CheckMediaType(d *format.Descriptor) error {
	if !d.MajorType.IsSet() || d.MajorType.Get() != types.MediaTypeVideo {
		return types.ErrInvalidFormat{Err: fmt.Errorf("the major type is not video: %s", d)}
	}

	if !d.Subtype.IsSet() || !d.Subtype.Get().IsSupported() {
		return types.ErrInvalidFormat{Err: fmt.Errorf("unsupported subtype: %s", d)}
	}

	if d.GetInterlaceMode().IsSingleField() {
		return types.ErrInvalidFormat{Err: fmt.Errorf("single-field interlace mode %s is not supported", d.GetInterlaceMode())}
	}

	// chroma is sampled per pixel pair in all the supported layouts
	if d.FrameSize.IsSet() && d.FrameSize.Get().Width%2 != 0 {
		return types.ErrInvalidFormat{Err: fmt.Errorf("odd frame width %d", d.FrameSize.Get().Width)}
	}

	return nil
}

// Propose validates the candidate and, unless testOnly is set, commits it.
func (n *Negotiator) Propose(
	role Role,
	candidate *format.Descriptor,
	testOnly bool,
) error {
	if err := n.Check(role, candidate); err != nil {
		return err
	}
	if testOnly {
		return nil
	}
	return n.Commit(role, candidate)
}

// Commit sets (or clears, if d is nil) the format of the role.
// The format is expected to be validated already.
func (n *Negotiator) Commit(role Role, d *format.Descriptor) error {
	switch role {
	case RoleInput:
		return n.CommitInput(d)
	case RoleOutput:
		n.output = d.Clone()
		return nil
	default:
		return types.ErrInvalidArgument{Err: fmt.Errorf("unknown role %s", role)}
	}
}

// CommitInput sets the input format and recomputes the geometry.
// On failure nothing is changed.
func (n *Negotiator) CommitInput(d *format.Descriptor) error {
	if d == nil {
		n.input = nil
		n.geometry = FrameGeometry{}
		return nil
	}

	d = d.Clone()
	geometry, err := NewFrameGeometry(d)
	if err != nil {
		return err
	}

	n.input = d
	n.geometry = geometry
	return nil
}

// Enumerate returns the index-th preferred format for the role.
func (n *Negotiator) Enumerate(role Role, index uint32) (*format.Descriptor, error) {
	if opposite := n.get(role.Opposite()); opposite != nil {
		if index > 0 {
			return nil, types.ErrNoMoreFormats{}
		}
		return opposite.Clone(), nil
	}

	subtypes := types.PreferredSubtypes()
	if index >= uint32(len(subtypes)) {
		return nil, types.ErrNoMoreFormats{}
	}
	return format.NewPartialVideo(subtypes[index]), nil
}

// InputDefaultStride returns the default stride of the current input format.
func (n *Negotiator) InputDefaultStride() (int32, error) {
	if n.input == nil {
		return 0, types.ErrTypeNotSet{}
	}
	return DefaultStride(n.input)
}
