package negotiator

import (
	"fmt"
	"math"

	"github.com/xaionaro-go/avgrayscale/format"
	"github.com/xaionaro-go/avgrayscale/kernel/imageprocessor"
	"github.com/xaionaro-go/avgrayscale/types"
	"github.com/xaionaro-go/typing"
)

// FrameGeometry is derived from the current input format;
// it is zero when no input format is set.
type FrameGeometry struct {
	Subtype       types.Subtype
	Width         uint32
	Height        uint32
	ImageSize     uint32
	DefaultStride int32
	Processor     imageprocessor.Abstract
}

func (g FrameGeometry) IsZero() bool {
	return g.Processor == nil
}

// NewFrameGeometry derives the geometry of the format; the result
// is cached into desc.DefaultStride.
func NewFrameGeometry(desc *format.Descriptor) (FrameGeometry, error) {
	if desc == nil {
		return FrameGeometry{}, types.ErrInvalidArgument{Err: fmt.Errorf("the format is nil")}
	}
	if !desc.Subtype.IsSet() {
		return FrameGeometry{}, types.ErrInvalidFormat{Err: fmt.Errorf("the subtype is not set")}
	}
	subtype := desc.Subtype.Get()

	processor, err := imageprocessor.ForSubtype(subtype)
	if err != nil {
		return FrameGeometry{}, types.ErrUnexpected{Err: err}
	}

	if !desc.FrameSize.IsSet() {
		return FrameGeometry{}, types.ErrInvalidFormat{Err: fmt.Errorf("the frame size is not set")}
	}
	size := desc.FrameSize.Get()

	imageSize, err := ImageSize(subtype, size.Width, size.Height)
	if err != nil {
		return FrameGeometry{}, err
	}

	stride, err := DefaultStride(desc)
	if err != nil {
		return FrameGeometry{}, err
	}

	return FrameGeometry{
		Subtype:       subtype,
		Width:         size.Width,
		Height:        size.Height,
		ImageSize:     imageSize,
		DefaultStride: stride,
		Processor:     processor,
	}, nil
}

// ImageSize returns the size of an unpadded image in bytes.
func ImageSize(
	subtype types.Subtype,
	width, height uint32,
) (uint32, error) {
	const maxSize = math.MaxUint32
	if width == 0 || height == 0 {
		return 0, types.ErrInvalidArgument{Err: fmt.Errorf("empty frame size %dx%d", width, height)}
	}

	switch {
	case subtype.IsPacked422():
		if width > maxSize/2 || width*2 > maxSize/height {
			return 0, types.ErrOverflow{Err: fmt.Errorf("image size of %dx%d %s", width, height, subtype)}
		}
		return width * height * 2, nil
	case subtype == types.SubtypeNV12:
		if height/2 > maxSize-height || (height+height/2) > maxSize/width {
			return 0, types.ErrOverflow{Err: fmt.Errorf("image size of %dx%d %s", width, height, subtype)}
		}
		return width * (height + height/2), nil
	default:
		return 0, types.ErrInvalidFormat{Err: fmt.Errorf("unsupported subtype %s", subtype)}
	}
}

// DefaultStride returns the stride of a buffer that has no stride of its own.
// A computed value is cached into desc.DefaultStride.
func DefaultStride(desc *format.Descriptor) (int32, error) {
	if desc.DefaultStride.IsSet() {
		return desc.DefaultStride.Get(), nil
	}
	if !desc.Subtype.IsSet() || !desc.FrameSize.IsSet() {
		return 0, types.ErrInvalidArgument{Err: fmt.Errorf("cannot compute a stride without a subtype and a frame size: %s", desc)}
	}
	subtype := desc.Subtype.Get()
	width := int64(desc.FrameSize.Get().Width)

	var stride int64
	switch {
	case subtype == types.SubtypeNV12:
		stride = width
	case subtype.IsPacked422():
		stride = (width*2 + 3) &^ 3
	default:
		return 0, types.ErrInvalidArgument{Err: fmt.Errorf("unsupported subtype %s", subtype)}
	}
	if stride > math.MaxInt32 {
		return 0, types.ErrOverflow{Err: fmt.Errorf("stride of %d-wide %s", width, subtype)}
	}

	desc.DefaultStride = typing.Opt(int32(stride))
	return int32(stride), nil
}
