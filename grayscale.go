// grayscale.go defines the Grayscale transform and its instance state.

// Package avgrayscale implements a single-input/single-output video transform
// that neutralizes the chroma of every frame, producing a grayscale rendition
// in the same pixel layout.
//
// The transform supports NV12, YUY2 and UYVY. The input and the output formats
// must be identical. At most one input frame is held at a time: ProcessInput
// stores it and the next ProcessOutput converts it and releases it.
//
// All the methods are safe for concurrent use; calls are serialized by
// a single instance lock.
package avgrayscale

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/facebookincubator/go-belt/tool/experimental/errmon"
	"github.com/xaionaro-go/avgrayscale/attributes"
	"github.com/xaionaro-go/avgrayscale/frame"
	"github.com/xaionaro-go/avgrayscale/logger"
	"github.com/xaionaro-go/avgrayscale/negotiator"
	"github.com/xaionaro-go/avgrayscale/types"
	"github.com/xaionaro-go/xsync"
)

type streamingSession struct {
	Initialized     bool
	DestinationRect image.Rectangle
}

type Grayscale struct {
	locker     xsync.Mutex
	attributes *attributes.Store
	negotiator *negotiator.Negotiator
	session    streamingSession
	pending    frame.Sample

	CommonsProcessing
}

func New(
	ctx context.Context,
	opts ...Option,
) *Grayscale {
	cfg := Options(opts).config()
	g := &Grayscale{
		attributes: cfg.Attributes,
		negotiator: negotiator.New(),
	}
	if g.attributes == nil {
		g.attributes = attributes.New()
	}
	logger.Debugf(ctx, "created %s", g)
	return g
}

func (g *Grayscale) String() string {
	return fmt.Sprintf("Grayscale(%p)", g)
}

func isValidStream(streamID types.StreamID) bool {
	return streamID == 0
}

func checkStream(streamID types.StreamID) error {
	if !isValidStream(streamID) {
		return types.ErrInvalidStream{StreamID: streamID}
	}
	return nil
}

// observeError reports an error to errmon unless it is a pacing signal
// the host is expected to react to.
func observeError(ctx context.Context, err error) {
	if err == nil {
		return
	}
	switch {
	case errors.As(err, &types.ErrNeedMoreInput{}),
		errors.As(err, &types.ErrNotAccepting{}),
		errors.As(err, &types.ErrNoMoreFormats{}),
		errors.As(err, &types.ErrNotImplemented{}):
		return
	}
	errmon.ObserveErrorCtx(ctx, err)
}
