// Package libav adapts libav (FFmpeg) frames to the frame.Sample interface.
package libav

import (
	"context"
	"fmt"
	"time"

	"github.com/asticode/go-astiav"
	"github.com/xaionaro-go/avgrayscale/avconv"
	"github.com/xaionaro-go/avgrayscale/buffer"
	"github.com/xaionaro-go/avgrayscale/frame"
	"github.com/xaionaro-go/avgrayscale/internal"
	"github.com/xaionaro-go/avgrayscale/pool"
	"github.com/xaionaro-go/avgrayscale/types"
	"github.com/xaionaro-go/typing"
)

// bufferAlign is the line alignment of the contiguous image built from the
// frame planes; 1 means no padding, which matches the default strides.
const bufferAlign = 1

var Pool = pool.NewPool(
	astiav.AllocFrame,
	func(f *astiav.Frame) { f.Unref() },
	func(f *astiav.Frame) { f.Free() },
)

// Frame is a frame.Sample backed by a libav frame.
type Frame struct {
	*astiav.Frame

	// OnRelease is called when a holder releases the frame.
	OnRelease func(*Frame)

	buffer *frameBuffer
}

var _ frame.Sample = (*Frame)(nil)
var _ frame.Releaser = (*Frame)(nil)

// Wrap makes a Sample of an existing libav frame; the frame is not copied.
func Wrap(f *astiav.Frame) *Frame {
	return &Frame{Frame: f}
}

// NewFrame allocates a video frame with its buffers.
func NewFrame(
	ctx context.Context,
	subtype types.Subtype,
	width, height uint32,
) (*Frame, error) {
	pixFmt, err := PixelFormatFromSubtype(subtype)
	if err != nil {
		return nil, err
	}

	f := astiav.AllocFrame()
	internal.SetFinalizerFree(ctx, f)
	if err := initFrame(f, pixFmt, width, height); err != nil {
		return nil, err
	}
	return Wrap(f), nil
}

// NewPooledFrame is NewFrame with the libav frame taken from Pool;
// the frame is returned to the pool when released.
func NewPooledFrame(
	subtype types.Subtype,
	width, height uint32,
) (*Frame, error) {
	pixFmt, err := PixelFormatFromSubtype(subtype)
	if err != nil {
		return nil, err
	}

	f := Pool.Get()
	if err := initFrame(f, pixFmt, width, height); err != nil {
		Pool.Put(f)
		return nil, err
	}
	result := Wrap(f)
	result.OnRelease = func(f *Frame) {
		Pool.Put(f.Frame)
		f.Frame = nil
	}
	return result, nil
}

func initFrame(
	f *astiav.Frame,
	pixFmt astiav.PixelFormat,
	width, height uint32,
) error {
	f.SetPixelFormat(pixFmt)
	f.SetWidth(int(width))
	f.SetHeight(int(height))
	if err := f.AllocBuffer(0); err != nil {
		return fmt.Errorf("unable to allocate the buffer of the %s %dx%d frame: %w", pixFmt, width, height, err)
	}
	return nil
}

func (f *Frame) timeBase() astiav.Rational {
	tb := f.Frame.TimeBase()
	if tb.Num() == 0 {
		// frames without a time base carry nanoseconds
		return astiav.NewRational(1, int(time.Second))
	}
	return tb
}

func (f *Frame) GetDuration() typing.Optional[time.Duration] {
	if f.Frame.Duration() == 0 {
		return typing.Optional[time.Duration]{}
	}
	return avconv.Duration(f.Frame.Duration(), f.timeBase())
}

func (f *Frame) SetDuration(d time.Duration) error {
	f.Frame.SetDuration(avconv.FromDuration(d, f.timeBase()))
	return nil
}

func (f *Frame) GetTimestamp() typing.Optional[time.Duration] {
	return avconv.Duration(f.Frame.Pts(), f.timeBase())
}

func (f *Frame) SetTimestamp(ts time.Duration) error {
	f.Frame.SetPts(avconv.FromDuration(ts, f.timeBase()))
	return nil
}

func (f *Frame) ContiguousBuffer() (buffer.Buffer, error) {
	if f.Frame == nil {
		return nil, fmt.Errorf("the frame is released")
	}
	if f.buffer != nil {
		return f.buffer, nil
	}

	size, err := f.Frame.ImageBufferSize(bufferAlign)
	if err != nil {
		return nil, fmt.Errorf("unable to get the image size of the frame: %w", err)
	}
	f.buffer = &frameBuffer{
		frame:         f.Frame,
		maxLength:     uint32(size),
		currentLength: uint32(size),
	}
	return f.buffer, nil
}

func (f *Frame) Release() {
	f.buffer = nil
	if f.OnRelease != nil {
		f.OnRelease(f)
	}
}
