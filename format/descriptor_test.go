package format

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/avgrayscale/types"
	"github.com/xaionaro-go/typing"
)

func TestDescriptorIsEqual(t *testing.T) {
	base := NewVideo(types.SubtypeUYVY, 4, 2)

	t.Run("same", func(t *testing.T) {
		require.True(t, base.IsEqual(NewVideo(types.SubtypeUYVY, 4, 2)))
	})

	t.Run("cached_stride_ignored", func(t *testing.T) {
		other := base.Clone()
		other.DefaultStride = typing.Opt(int32(8))
		require.True(t, base.IsEqual(other))
	})

	t.Run("unset_interlace_is_progressive", func(t *testing.T) {
		other := base.Clone()
		other.InterlaceMode = typing.Optional[types.InterlaceMode]{}
		require.True(t, base.IsEqual(other))
	})

	t.Run("different_subtype", func(t *testing.T) {
		require.False(t, base.IsEqual(NewVideo(types.SubtypeNV12, 4, 2)))
	})

	t.Run("different_size", func(t *testing.T) {
		require.False(t, base.IsEqual(NewVideo(types.SubtypeUYVY, 6, 2)))
	})

	t.Run("different_interlace", func(t *testing.T) {
		other := base.Clone()
		other.InterlaceMode = typing.Opt(types.InterlaceModeFieldInterleavedUpperFirst)
		require.False(t, base.IsEqual(other))
	})

	t.Run("partial_vs_full", func(t *testing.T) {
		require.False(t, base.IsEqual(NewPartialVideo(types.SubtypeUYVY)))
	})

	t.Run("nil", func(t *testing.T) {
		require.False(t, base.IsEqual(nil))
		var d *Descriptor
		require.True(t, d.IsEqual(nil))
	})
}

func TestDescriptorCloneIsIndependent(t *testing.T) {
	d := NewVideo(types.SubtypeNV12, 1920, 1080)
	cpy := d.Clone()
	cpy.DefaultStride = typing.Opt(int32(1920))
	require.False(t, d.DefaultStride.IsSet())
	require.Equal(t, "{major:video subtype:NV12 size:1920x1080 interlace:progressive stride:1920}", cpy.String())
}
