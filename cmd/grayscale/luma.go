package main

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/xaionaro-go/avgrayscale/types"
)

// lumaImage extracts the luma plane of an unpadded frame.
func lumaImage(
	subtype types.Subtype,
	width, height int,
	data []byte,
) (*image.Gray, error) {
	img := image.NewGray(image.Rect(0, 0, width, height))
	switch subtype {
	case types.SubtypeNV12:
		if len(data) < width*height {
			return nil, fmt.Errorf("the frame is too short: %d < %d", len(data), width*height)
		}
		for y := 0; y < height; y++ {
			copy(img.Pix[y*img.Stride:y*img.Stride+width], data[y*width:])
		}
	case types.SubtypeYUY2, types.SubtypeUYVY:
		if len(data) < width*height*2 {
			return nil, fmt.Errorf("the frame is too short: %d < %d", len(data), width*height*2)
		}
		lumaOffset := 0
		if subtype == types.SubtypeUYVY {
			lumaOffset = 1
		}
		for y := 0; y < height; y++ {
			row := data[y*width*2:]
			for x := 0; x < width; x++ {
				img.Pix[y*img.Stride+x] = row[x*2+lumaOffset]
			}
		}
	default:
		return nil, fmt.Errorf("unsupported subtype %s", subtype)
	}
	return img, nil
}

func saveLuma(
	path string,
	subtype types.Subtype,
	width, height int,
	data []byte,
) error {
	img, err := lumaImage(subtype, width, height, data)
	if err != nil {
		return fmt.Errorf("unable to extract the luma plane: %w", err)
	}
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("unable to save '%s': %w", path, err)
	}
	return nil
}
