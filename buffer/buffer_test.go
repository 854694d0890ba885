package buffer

import (
	"context"
	"testing"

	"github.com/asticode/go-astikit"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/avgrayscale/types"
)

func TestMemory(t *testing.T) {
	m := NewMemory(16)
	require.Equal(t, uint32(16), m.MaxLength())
	require.Equal(t, uint32(0), m.CurrentLength())

	b, err := m.Lock(LockFlagsWrite)
	require.NoError(t, err)
	require.Len(t, b, 16)
	require.True(t, m.IsLocked())

	_, err = m.Lock(LockFlagsRead)
	require.Error(t, err)

	require.NoError(t, m.Unlock())
	require.Error(t, m.Unlock())

	require.NoError(t, m.SetCurrentLength(8))
	require.Len(t, m.Bytes(), 8)
	require.Error(t, m.SetCurrentLength(17))
}

func TestLockVideoDefaultStride(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryFromBytes(make([]byte, 16))

	l, err := LockVideo(ctx, nil, m, LockFlagsRead, 2, 8)
	require.NoError(t, err)
	require.Equal(t, 8, l.Stride)
	require.Len(t, l.TopRow, 16)
	require.True(t, m.IsLocked())

	require.NoError(t, l.Close())
	require.False(t, m.IsLocked())
	require.NoError(t, l.Close())
}

func TestLockVideo2D(t *testing.T) {
	ctx := context.Background()
	m := NewMemory2D(12, 2)

	l, err := LockVideo(ctx, nil, m, LockFlagsWrite, 2, 8)
	require.NoError(t, err)
	require.Equal(t, 12, l.Stride)
	require.NoError(t, l.Close())
	require.False(t, m.IsLocked())
}

func TestLockVideoReleasedByCloser(t *testing.T) {
	ctx := context.Background()
	closer := astikit.NewCloser()
	in := NewMemory(16)
	out := NewMemory(16)

	_, err := LockVideo(ctx, closer, in, LockFlagsRead, 2, 8)
	require.NoError(t, err)
	_, err = LockVideo(ctx, closer, out, LockFlagsWrite, 2, 8)
	require.NoError(t, err)
	require.True(t, in.IsLocked())
	require.True(t, out.IsLocked())

	require.NoError(t, closer.Close())
	require.False(t, in.IsLocked())
	require.False(t, out.IsLocked())
}

func TestLockVideoRejectsNonPositiveStride(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(16)

	_, err := LockVideo(ctx, nil, m, LockFlagsRead, 2, -8)
	require.ErrorAs(t, err, &types.ErrInvalidArgument{})
	require.False(t, m.IsLocked(), "a failed lock must be released")

	_, err = LockVideo(ctx, nil, nil, LockFlagsRead, 2, 8)
	require.ErrorAs(t, err, &types.ErrInvalidArgument{})
}
