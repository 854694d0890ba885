package main

import (
	"path/filepath"
	"testing"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/avgrayscale/types"
)

func TestLumaImage(t *testing.T) {
	img, err := lumaImage(types.SubtypeUYVY, 2, 1, []byte{0x80, 1, 0x80, 2})
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2}, img.Pix)

	img, err = lumaImage(types.SubtypeYUY2, 2, 1, []byte{3, 0x80, 4, 0x80})
	require.NoError(t, err)
	require.Equal(t, []byte{3, 4}, img.Pix)

	img, err = lumaImage(types.SubtypeNV12, 2, 2, []byte{5, 6, 7, 8, 0x80, 0x80})
	require.NoError(t, err)
	require.Equal(t, []byte{5, 6, 7, 8}, img.Pix)

	_, err = lumaImage(types.SubtypeNV12, 2, 2, []byte{5})
	require.Error(t, err)
}

func TestSaveLuma(t *testing.T) {
	path := filepath.Join(t.TempDir(), "luma.png")
	require.NoError(t, saveLuma(path, types.SubtypeYUY2, 2, 1, []byte{3, 0x80, 4, 0x80}))

	img, err := imgio.Open(path)
	require.NoError(t, err)
	require.Equal(t, 2, img.Bounds().Dx())
}
