package libav

import (
	"fmt"

	"github.com/asticode/go-astiav"
	"github.com/xaionaro-go/avgrayscale/format"
	"github.com/xaionaro-go/avgrayscale/types"
)

// PixelFormatFromSubtype returns the libav pixel format of the subtype.
func PixelFormatFromSubtype(subtype types.Subtype) (astiav.PixelFormat, error) {
	switch subtype {
	case types.SubtypeNV12:
		return astiav.PixelFormatNv12, nil
	case types.SubtypeYUY2:
		return astiav.PixelFormatYuyv422, nil
	case types.SubtypeUYVY:
		return astiav.PixelFormatUyvy422, nil
	default:
		return astiav.PixelFormatNone, types.ErrInvalidFormat{Err: fmt.Errorf("subtype %s has no libav pixel format", subtype)}
	}
}

// SubtypeFromPixelFormat is the reverse of PixelFormatFromSubtype.
func SubtypeFromPixelFormat(pixFmt astiav.PixelFormat) (types.Subtype, error) {
	switch pixFmt {
	case astiav.PixelFormatNv12:
		return types.SubtypeNV12, nil
	case astiav.PixelFormatYuyv422:
		return types.SubtypeYUY2, nil
	case astiav.PixelFormatUyvy422:
		return types.SubtypeUYVY, nil
	default:
		return types.SubtypeUndefined, types.ErrInvalidFormat{Err: fmt.Errorf("pixel format %s is not supported", pixFmt)}
	}
}

// DescriptorFromFrame describes the format of a libav video frame.
func DescriptorFromFrame(f *astiav.Frame) (*format.Descriptor, error) {
	subtype, err := SubtypeFromPixelFormat(f.PixelFormat())
	if err != nil {
		return nil, err
	}
	if f.Width() <= 0 || f.Height() <= 0 {
		return nil, types.ErrInvalidFormat{Err: fmt.Errorf("invalid frame size %dx%d", f.Width(), f.Height())}
	}
	return format.NewVideo(subtype, uint32(f.Width()), uint32(f.Height())), nil
}
