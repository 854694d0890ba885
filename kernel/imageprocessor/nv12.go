package imageprocessor

import (
	"image"

	"github.com/xaionaro-go/avgrayscale/types"
)

// NV12Processor processes NV12: a full-size Y plane followed by
// a half-height plane of interleaved U/V pairs, both with the same stride.
type NV12Processor struct{}

var NV12 = NV12Processor{}

var _ Abstract = NV12Processor{}

func (NV12Processor) String() string {
	return "NV12"
}

func (NV12Processor) Subtype() types.Subtype {
	return types.SubtypeNV12
}

func (NV12Processor) Transform(
	rect image.Rectangle,
	dst []byte, dstStride int,
	src []byte, srcStride int,
	width, height int,
) error {
	if err := checkDimensions(width, height); err != nil {
		return err
	}
	if width == 0 || height == 0 {
		return nil
	}
	chromaRows := height / 2
	if err := checkBuffer("destination", dst, dstStride, width, height+chromaRows); err != nil {
		return err
	}
	if err := checkBuffer("source", src, srcStride, width, height+chromaRows); err != nil {
		return err
	}

	// the luma plane is never touched by the effect
	for y := 0; y < height; y++ {
		copy(dst[y*dstStride:y*dstStride+width], src[y*srcStride:y*srcStride+width])
	}

	if chromaRows == 0 {
		return nil
	}
	dst = dst[height*dstStride:]
	src = src[height*srcStride:]

	rect = clampRect(rect, width, height)
	top := rect.Min.Y / 2
	bottom := clamp((rect.Max.Y+1)/2, top, chromaRows)
	left, right := rect.Min.X, rect.Max.X

	y := 0
	for ; y < top; y++ {
		copy(dst[y*dstStride:y*dstStride+width], src[y*srcStride:y*srcStride+width])
	}

	for ; y < bottom; y++ {
		dstRow := dst[y*dstStride : y*dstStride+width]
		srcRow := src[y*srcStride : y*srcStride+width]

		copy(dstRow[:left], srcRow[:left])
		fill := dstRow[left:right]
		for i := range fill {
			fill[i] = NeutralChroma
		}
		copy(dstRow[right:], srcRow[right:])
	}

	for ; y < chromaRows; y++ {
		copy(dst[y*dstStride:y*dstStride+width], src[y*srcStride:y*srcStride+width])
	}
	return nil
}
