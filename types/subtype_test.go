package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubtypeFourCC(t *testing.T) {
	require.Equal(t, FourCC('N', 'V', '1', '2'), SubtypeNV12)
	require.Equal(t, FourCC('Y', 'U', 'Y', '2'), SubtypeYUY2)
	require.Equal(t, FourCC('U', 'Y', 'V', 'Y'), SubtypeUYVY)
	require.Equal(t, uint32(0x3231564E), uint32(SubtypeNV12))
}

func TestSubtypeString(t *testing.T) {
	for _, tc := range []struct {
		subtype Subtype
		want    string
	}{
		{SubtypeNV12, "NV12"},
		{SubtypeYUY2, "YUY2"},
		{SubtypeUYVY, "UYVY"},
		{SubtypeUndefined, "undefined"},
		{SubtypeRGB32, "RGB32"},
		{Subtype(0x01), "Subtype(0x00000001)"},
	} {
		require.Equal(t, tc.want, tc.subtype.String())
	}
}

func TestSubtypeFromString(t *testing.T) {
	s, err := SubtypeFromString("nv12")
	require.NoError(t, err)
	require.Equal(t, SubtypeNV12, s)

	s, err = SubtypeFromString(" uyvy ")
	require.NoError(t, err)
	require.Equal(t, SubtypeUYVY, s)

	_, err = SubtypeFromString("yuv")
	require.Error(t, err)
}

func TestPreferredSubtypes(t *testing.T) {
	require.Equal(t, []Subtype{SubtypeNV12, SubtypeYUY2, SubtypeUYVY}, PreferredSubtypes())
	require.True(t, SubtypeNV12.IsSupported())
	require.False(t, SubtypeI420.IsSupported())
	require.True(t, SubtypeUYVY.IsPacked422())
	require.False(t, SubtypeNV12.IsPacked422())
}
