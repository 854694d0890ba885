package avgrayscale

import (
	"context"
	"fmt"
	"image"

	"github.com/xaionaro-go/avgrayscale/attributes"
	"github.com/xaionaro-go/avgrayscale/frame"
	"github.com/xaionaro-go/avgrayscale/logger"
	"github.com/xaionaro-go/avgrayscale/types"
	"github.com/xaionaro-go/xsync"
)

// ProcessMessage handles a lifecycle message from the host.
//
// The param is the message payload; it is used by none of the supported messages.
func (g *Grayscale) ProcessMessage(
	ctx context.Context,
	msg types.MessageType,
	param uintptr,
) (_err error) {
	logger.Debugf(ctx, "ProcessMessage(%s, 0x%X)", msg, param)
	defer func() { logger.Debugf(ctx, "/ProcessMessage(%s, 0x%X): %v", msg, param, _err) }()
	return xsync.DoA2R1(ctx, &g.locker, g.processMessageLocked, ctx, msg)
}

func (g *Grayscale) processMessageLocked(
	ctx context.Context,
	msg types.MessageType,
) error {
	switch msg {
	case types.MessageCommandFlush:
		g.flushLocked(ctx)
	case types.MessageSetD3DManager:
		return types.ErrNotImplemented{Err: fmt.Errorf("hardware device managers are not supported")}
	case types.MessageNotifyBeginStreaming:
		g.beginStreamingLocked(ctx)
	case types.MessageNotifyEndStreaming:
		g.endStreamingLocked(ctx)
	case types.MessageCommandDrain,
		types.MessageNotifyEndOfStream,
		types.MessageNotifyStartOfStream:
		// there is no internal queue to drain or to prepare
	default:
		logger.Debugf(ctx, "ignoring an unknown message %s", msg)
	}
	return nil
}

func (g *Grayscale) flushLocked(ctx context.Context) {
	if g.pending == nil {
		return
	}
	logger.Debugf(ctx, "dropping the pending frame")
	g.Counters.Flushed.Increment(0)
	g.releasePendingLocked()
}

func (g *Grayscale) releasePendingLocked() {
	pending := g.pending
	g.pending = nil
	if pending != nil {
		frame.Release(pending)
	}
}

// beginStreamingLocked initializes the streaming session if it is not initialized yet.
//
// The destination rectangle is read from the attribute store here, so changing
// the attribute during streaming has no effect until the session is restarted.
func (g *Grayscale) beginStreamingLocked(ctx context.Context) {
	if g.session.Initialized {
		return
	}

	geometry := g.negotiator.Geometry()
	frameRect := image.Rect(0, 0, int(geometry.Width), int(geometry.Height))
	rect := frameRect

	configured, ok, err := g.attributes.GetRectangle(ctx, attributes.KeyDestinationRectangle)
	switch {
	case err != nil:
		logger.Warnf(ctx, "ignoring the destination rectangle: %v", err)
	case ok:
		if clamped := configured.Intersect(frameRect); !clamped.Empty() {
			rect = clamped
		} else {
			logger.Debugf(ctx, "the destination rectangle %v does not overlap the frame %v, using the full frame", configured, frameRect)
		}
	}

	g.session = streamingSession{
		Initialized:     true,
		DestinationRect: rect,
	}
	logger.Debugf(ctx, "streaming started, the destination rectangle is %v", rect)
}

func (g *Grayscale) endStreamingLocked(ctx context.Context) {
	if g.session.Initialized {
		logger.Debugf(ctx, "streaming ended")
	}
	g.session = streamingSession{}
}
