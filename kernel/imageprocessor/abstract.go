// abstract.go defines the Abstract interface for image processors.

// Package imageprocessor provides the chroma-neutralizing image kernels,
// one per supported pixel layout.
package imageprocessor

import (
	"fmt"
	"image"

	"github.com/xaionaro-go/avgrayscale/types"
)

// NeutralChroma is the chroma sample value with no color difference.
const NeutralChroma = 0x80

// Abstract converts the src image into dst. Pixels inside rect get their
// chroma neutralized, everything else is copied unchanged.
//
// Strides are in bytes and must be positive; buffers start at the top row.
type Abstract interface {
	fmt.Stringer
	Subtype() types.Subtype
	Transform(
		rect image.Rectangle,
		dst []byte, dstStride int,
		src []byte, srcStride int,
		width, height int,
	) error
}

// ForSubtype returns the image processor for the given pixel layout.
func ForSubtype(subtype types.Subtype) (Abstract, error) {
	switch subtype {
	case types.SubtypeUYVY:
		return UYVY, nil
	case types.SubtypeYUY2:
		return YUY2, nil
	case types.SubtypeNV12:
		return NV12, nil
	default:
		return nil, types.ErrInvalidFormat{Err: fmt.Errorf("no image processor for subtype %s", subtype)}
	}
}

func checkBuffer(
	name string,
	buf []byte,
	stride int,
	rowBytes int,
	rows int,
) error {
	if rows == 0 || rowBytes == 0 {
		return nil
	}
	if stride < rowBytes {
		return types.ErrInvalidArgument{Err: fmt.Errorf("%s stride %d is less than the row size %d", name, stride, rowBytes)}
	}
	if required := (rows-1)*stride + rowBytes; len(buf) < required {
		return types.ErrInvalidArgument{Err: fmt.Errorf("%s buffer is too small: %d < %d", name, len(buf), required)}
	}
	return nil
}

func checkDimensions(width, height int) error {
	if width < 0 || height < 0 {
		return types.ErrInvalidArgument{Err: fmt.Errorf("negative dimensions %dx%d", width, height)}
	}
	return nil
}

func clamp(v, minVal, maxVal int) int {
	switch {
	case v < minVal:
		return minVal
	case v > maxVal:
		return maxVal
	default:
		return v
	}
}

// clampRect limits the rectangle to [0,width)x[0,height), keeping Min <= Max.
func clampRect(rect image.Rectangle, width, height int) image.Rectangle {
	rect = rect.Canon()
	rect.Min.X = clamp(rect.Min.X, 0, width)
	rect.Max.X = clamp(rect.Max.X, rect.Min.X, width)
	rect.Min.Y = clamp(rect.Min.Y, 0, height)
	rect.Max.Y = clamp(rect.Max.Y, rect.Min.Y, height)
	return rect
}
