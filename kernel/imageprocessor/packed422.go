package imageprocessor

import (
	"encoding/binary"
	"fmt"
	"image"

	"github.com/xaionaro-go/avgrayscale/types"
	"golang.org/x/sys/cpu"
)

// Packed422 processes packed 4:2:2 layouts: each 32-bit group holds two
// pixels (two luma samples and one chroma pair).
type Packed422 struct {
	subtype types.Subtype

	// lumaMask keeps the luma bytes of a group read in native byte order,
	// neutralBits sets its chroma bytes to NeutralChroma.
	lumaMask    uint32
	neutralBits uint32
}

var (
	// UYVY has the byte order [U Y0 V Y1]: chroma at the even offsets.
	UYVY = newPacked422(types.SubtypeUYVY, [4]bool{true, false, true, false})

	// YUY2 has the byte order [Y0 U Y1 V]: chroma at the odd offsets.
	YUY2 = newPacked422(types.SubtypeYUY2, [4]bool{false, true, false, true})
)

var _ Abstract = (*Packed422)(nil)

func newPacked422(
	subtype types.Subtype,
	isChroma [4]bool,
) *Packed422 {
	var lumaBytes, chromaBytes [4]byte
	for i, c := range isChroma {
		if c {
			chromaBytes[i] = NeutralChroma
		} else {
			lumaBytes[i] = 0xff
		}
	}
	return &Packed422{
		subtype:     subtype,
		lumaMask:    nativeEndian().Uint32(lumaBytes[:]),
		neutralBits: nativeEndian().Uint32(chromaBytes[:]),
	}
}

func nativeEndian() binary.ByteOrder {
	if cpu.IsBigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func (p *Packed422) String() string {
	return fmt.Sprintf("Packed422(%s)", p.subtype)
}

func (p *Packed422) Subtype() types.Subtype {
	return p.subtype
}

func (p *Packed422) Transform(
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
	rowBytes := width * 2
	if err := checkBuffer("destination", dst, dstStride, rowBytes, height); err != nil {
		return err
	}
	if err := checkBuffer("source", src, srcStride, rowBytes, height); err != nil {
		return err
	}

	rect = clampRect(rect, width, height)
	// chroma is sampled per pixel pair
	left := rect.Min.X &^ 1
	right := rect.Max.X &^ 1
	ne := nativeEndian()

	y := 0
	for ; y < rect.Min.Y; y++ {
		copy(dst[y*dstStride:y*dstStride+rowBytes], src[y*srcStride:y*srcStride+rowBytes])
	}

	for ; y < rect.Max.Y; y++ {
		dstRow := dst[y*dstStride : y*dstStride+rowBytes]
		srcRow := src[y*srcStride : y*srcStride+rowBytes]

		copy(dstRow[:left*2], srcRow[:left*2])
		for x := left; x+1 < right; x += 2 {
			v := ne.Uint32(srcRow[x*2:])
			ne.PutUint32(dstRow[x*2:], (v&p.lumaMask)|p.neutralBits)
		}
		copy(dstRow[right*2:], srcRow[right*2:])
	}

	for ; y < height; y++ {
		copy(dst[y*dstStride:y*dstStride+rowBytes], src[y*srcStride:y*srcStride+rowBytes])
	}
	return nil
}
