package libav_test

import (
	"context"
	"testing"
	"time"

	"github.com/asticode/go-astiav"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/avgrayscale"
	"github.com/xaionaro-go/avgrayscale/buffer"
	"github.com/xaionaro-go/avgrayscale/frame/libav"
	"github.com/xaionaro-go/avgrayscale/types"
)

func TestPixelFormatMapping(t *testing.T) {
	for _, subtype := range types.PreferredSubtypes() {
		pixFmt, err := libav.PixelFormatFromSubtype(subtype)
		require.NoError(t, err)
		back, err := libav.SubtypeFromPixelFormat(pixFmt)
		require.NoError(t, err)
		require.Equal(t, subtype, back)
	}

	_, err := libav.PixelFormatFromSubtype(types.SubtypeRGB32)
	require.ErrorAs(t, err, &types.ErrInvalidFormat{})
	_, err = libav.SubtypeFromPixelFormat(astiav.PixelFormatYuv420P)
	require.ErrorAs(t, err, &types.ErrInvalidFormat{})
}

func TestFrameTimestamps(t *testing.T) {
	ctx := context.Background()
	f, err := libav.NewFrame(ctx, types.SubtypeUYVY, 4, 2)
	require.NoError(t, err)

	f.SetTimeBase(astiav.NewRational(1, 1000))
	f.SetPts(astiav.NoPtsValue)
	require.False(t, f.GetTimestamp().IsSet())

	require.NoError(t, f.SetTimestamp(2*time.Second))
	require.Equal(t, int64(2000), f.Pts())
	require.Equal(t, 2*time.Second, f.GetTimestamp().Get())

	require.NoError(t, f.SetDuration(40*time.Millisecond))
	require.Equal(t, 40*time.Millisecond, f.GetDuration().Get())

	d, err := libav.DescriptorFromFrame(f.Frame)
	require.NoError(t, err)
	require.Equal(t, types.SubtypeUYVY, d.Subtype.Get())
	require.Equal(t, uint32(4), d.FrameSize.Get().Width)
}

func TestGrayscaleLibAVFrames(t *testing.T) {
	ctx := context.Background()

	in, err := libav.NewFrame(ctx, types.SubtypeUYVY, 4, 2)
	require.NoError(t, err)
	require.NoError(t, in.MakeWritable())
	require.NoError(t, in.Data().SetBytes([]byte{
		0x10, 0x20, 0x30, 0x40, 0x50, 0x60, 0x70, 0x80,
		0x11, 0x21, 0x31, 0x41, 0x51, 0x61, 0x71, 0x81,
	}, 1))
	in.SetTimeBase(astiav.NewRational(1, 1000))
	in.SetPts(1000)

	desc, err := libav.DescriptorFromFrame(in.Frame)
	require.NoError(t, err)

	g := avgrayscale.New(ctx)
	require.NoError(t, g.SetInputType(ctx, 0, desc, 0))
	require.NoError(t, g.SetOutputType(ctx, 0, desc, 0))
	require.NoError(t, g.ProcessInput(ctx, 0, in, 0))

	out, err := libav.NewPooledFrame(types.SubtypeUYVY, 4, 2)
	require.NoError(t, err)
	_, err = g.ProcessOutput(ctx, 0, []avgrayscale.OutputDataBuffer{{Sample: out}})
	require.NoError(t, err)

	data, err := out.Data().Bytes(1)
	require.NoError(t, err)
	require.Equal(t, []byte{
		0x80, 0x20, 0x80, 0x40, 0x80, 0x60, 0x80, 0x80,
		0x80, 0x21, 0x80, 0x41, 0x80, 0x61, 0x80, 0x81,
	}, data)
	require.Equal(t, time.Second, out.GetTimestamp().Get())

	buf, err := out.ContiguousBuffer()
	require.NoError(t, err)
	require.Equal(t, uint32(16), buf.CurrentLength())

	_, err = buf.Lock(buffer.LockFlagsRead)
	require.NoError(t, err)
	_, err = buf.Lock(buffer.LockFlagsRead)
	require.Error(t, err)
	require.NoError(t, buf.Unlock())

	out.Release()
	require.Nil(t, out.Frame)
	_, err = out.ContiguousBuffer()
	require.Error(t, err)
}
