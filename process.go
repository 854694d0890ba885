package avgrayscale

import (
	"context"
	"fmt"

	"github.com/asticode/go-astikit"
	"github.com/xaionaro-go/avgrayscale/buffer"
	"github.com/xaionaro-go/avgrayscale/frame"
	"github.com/xaionaro-go/avgrayscale/internal"
	"github.com/xaionaro-go/avgrayscale/logger"
	"github.com/xaionaro-go/avgrayscale/types"
	"github.com/xaionaro-go/xsync"
)

// OutputDataBuffer is an output slot of ProcessOutput; the caller provides
// the Sample to write the result into.
type OutputDataBuffer struct {
	StreamID types.StreamID
	Sample   frame.Sample
	Status   uint32
}

// ProcessInput takes the frame to be converted by the next ProcessOutput call.
//
// The transform holds the frame until it is converted or flushed; the frame
// is released through frame.Release.
func (g *Grayscale) ProcessInput(
	ctx context.Context,
	streamID types.StreamID,
	sample frame.Sample,
	flags types.ProcessInputFlags,
) (_err error) {
	logger.Tracef(ctx, "ProcessInput(%d, %T, %d)", streamID, sample, flags)
	defer func() {
		logger.Tracef(ctx, "/ProcessInput(%d, %T, %d): %v", streamID, sample, flags, _err)
		observeError(ctx, _err)
	}()

	if sample == nil {
		return types.ErrInvalidArgument{Err: fmt.Errorf("the sample is nil")}
	}
	if flags != 0 {
		return types.ErrInvalidArgument{Err: fmt.Errorf("unknown flags 0x%X", uint32(flags))}
	}
	if err := checkStream(streamID); err != nil {
		return err
	}
	return xsync.DoA2R1(ctx, &g.locker, g.processInputLocked, ctx, sample)
}

func (g *Grayscale) processInputLocked(
	ctx context.Context,
	sample frame.Sample,
) error {
	if !g.negotiator.BothSet() {
		return types.ErrNotAccepting{Reason: "the media types are not set"}
	}
	if g.pending != nil {
		return types.ErrNotAccepting{Reason: "a frame is already pending"}
	}

	g.beginStreamingLocked(ctx)
	g.pending = sample

	var size uint64
	if buf, err := sample.ContiguousBuffer(); err == nil {
		size = uint64(buf.CurrentLength())
	}
	g.Counters.Accepted.Increment(size)
	return nil
}

// ProcessOutput converts the pending input frame into outputs[0].Sample.
//
// The pending frame is released whatever the outcome, unless the call
// is rejected before any frame is touched (invalid arguments or no pending frame).
func (g *Grayscale) ProcessOutput(
	ctx context.Context,
	flags types.ProcessOutputFlags,
	outputs []OutputDataBuffer,
) (_status uint32, _err error) {
	logger.Tracef(ctx, "ProcessOutput(%d, %d)", flags, len(outputs))
	defer func() {
		logger.Tracef(ctx, "/ProcessOutput(%d, %d): %d, %v", flags, len(outputs), _status, _err)
		observeError(ctx, _err)
	}()

	if flags != 0 {
		return 0, types.ErrInvalidArgument{Err: fmt.Errorf("unknown flags 0x%X", uint32(flags))}
	}
	if len(outputs) != 1 {
		return 0, types.ErrInvalidArgument{Err: fmt.Errorf("expected exactly one output buffer, got %d", len(outputs))}
	}
	if outputs[0].Sample == nil {
		return 0, types.ErrInvalidArgument{Err: fmt.Errorf("the output sample is not provided")}
	}
	if err := checkStream(outputs[0].StreamID); err != nil {
		return 0, err
	}

	return xsync.DoA2R2(ctx, &g.locker, g.processOutputLocked, ctx, &outputs[0])
}

func (g *Grayscale) processOutputLocked(
	ctx context.Context,
	output *OutputDataBuffer,
) (_status uint32, _err error) {
	if g.pending == nil {
		return 0, types.ErrNeedMoreInput{}
	}
	defer func() {
		if _err != nil {
			g.Counters.Failed.Increment(0)
		}
		g.releasePendingLocked()
	}()

	internal.Assert(ctx, g.negotiator.BothSet(), "a frame is pending while the media types are not set")
	g.beginStreamingLocked(ctx)

	n, err := g.convertLocked(ctx, output.Sample, g.pending)
	if err != nil {
		return 0, err
	}

	output.Status = 0
	g.Counters.Produced.Increment(uint64(n))
	return 0, nil
}

func (g *Grayscale) convertLocked(
	ctx context.Context,
	dst frame.Sample,
	src frame.Sample,
) (uint32, error) {
	geometry := g.negotiator.Geometry()
	if geometry.Processor == nil {
		return 0, types.ErrUnexpected{Err: fmt.Errorf("no image processor for the current geometry")}
	}
	defaultStride, err := g.negotiator.InputDefaultStride()
	if err != nil {
		return 0, fmt.Errorf("unable to get the default stride: %w", err)
	}

	srcBuf, err := src.ContiguousBuffer()
	if err != nil {
		return 0, fmt.Errorf("unable to get the input buffer: %w", err)
	}
	dstBuf, err := dst.ContiguousBuffer()
	if err != nil {
		return 0, fmt.Errorf("unable to get the output buffer: %w", err)
	}

	var err0 error
	err = func() error {
		closer := astikit.NewCloser()
		defer func() { err0 = closer.Close() }()

		srcLock, err := buffer.LockVideo(ctx, closer, srcBuf, buffer.LockFlagsRead, geometry.Height, defaultStride)
		if err != nil {
			return fmt.Errorf("unable to lock the input buffer: %w", err)
		}
		dstLock, err := buffer.LockVideo(ctx, closer, dstBuf, buffer.LockFlagsWrite, geometry.Height, defaultStride)
		if err != nil {
			return fmt.Errorf("unable to lock the output buffer: %w", err)
		}

		return geometry.Processor.Transform(
			g.session.DestinationRect,
			dstLock.TopRow, dstLock.Stride,
			srcLock.TopRow, srcLock.Stride,
			int(geometry.Width), int(geometry.Height),
		)
	}()
	if err != nil {
		return 0, fmt.Errorf("unable to convert the frame with %s: %w", geometry.Processor, err)
	}
	if err0 != nil {
		return 0, fmt.Errorf("unable to unlock the buffers: %w", err0)
	}

	if err := dstBuf.SetCurrentLength(geometry.ImageSize); err != nil {
		return 0, fmt.Errorf("unable to set the output length to %d: %w", geometry.ImageSize, err)
	}

	if duration := src.GetDuration(); duration.IsSet() {
		if err := dst.SetDuration(duration.Get()); err != nil {
			return 0, fmt.Errorf("unable to set the output duration: %w", err)
		}
	}
	if ts := src.GetTimestamp(); ts.IsSet() {
		if err := dst.SetTimestamp(ts.Get()); err != nil {
			logger.Debugf(ctx, "unable to set the output timestamp: %v", err)
		}
	}

	return geometry.ImageSize, nil
}
