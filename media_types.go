// media_types.go implements the type negotiation surface of the transform.

package avgrayscale

import (
	"context"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	"github.com/xaionaro-go/avgrayscale/format"
	"github.com/xaionaro-go/avgrayscale/logger"
	"github.com/xaionaro-go/avgrayscale/negotiator"
	"github.com/xaionaro-go/avgrayscale/types"
	"github.com/xaionaro-go/xsync"
)

// GetInputAvailableType returns a preferred input type: the output type
// if it is set, otherwise a partial type from the list of supported subtypes.
func (g *Grayscale) GetInputAvailableType(
	ctx context.Context,
	streamID types.StreamID,
	typeIndex uint32,
) (*format.Descriptor, error) {
	return g.getAvailableType(ctx, negotiator.RoleInput, streamID, typeIndex)
}

// GetOutputAvailableType returns a preferred output type: the input type
// if it is set, otherwise a partial type from the list of supported subtypes.
func (g *Grayscale) GetOutputAvailableType(
	ctx context.Context,
	streamID types.StreamID,
	typeIndex uint32,
) (*format.Descriptor, error) {
	return g.getAvailableType(ctx, negotiator.RoleOutput, streamID, typeIndex)
}

func (g *Grayscale) getAvailableType(
	ctx context.Context,
	role negotiator.Role,
	streamID types.StreamID,
	typeIndex uint32,
) (_ret *format.Descriptor, _err error) {
	logger.Tracef(ctx, "getAvailableType(%s, %d, %d)", role, streamID, typeIndex)
	defer func() { logger.Tracef(ctx, "/getAvailableType(%s, %d, %d): %s, %v", role, streamID, typeIndex, _ret, _err) }()
	if err := checkStream(streamID); err != nil {
		return nil, err
	}
	return xsync.DoA2R2(ctx, &g.locker, g.negotiator.Enumerate, role, typeIndex)
}

// SetInputType sets, tests (with types.SetTypeTestOnly) or clears (with a nil
// type) the input type.
func (g *Grayscale) SetInputType(
	ctx context.Context,
	streamID types.StreamID,
	mediaType *format.Descriptor,
	flags types.SetTypeFlags,
) error {
	return g.setType(ctx, negotiator.RoleInput, streamID, mediaType, flags)
}

// SetOutputType sets, tests (with types.SetTypeTestOnly) or clears (with a nil
// type) the output type.
func (g *Grayscale) SetOutputType(
	ctx context.Context,
	streamID types.StreamID,
	mediaType *format.Descriptor,
	flags types.SetTypeFlags,
) error {
	return g.setType(ctx, negotiator.RoleOutput, streamID, mediaType, flags)
}

func (g *Grayscale) setType(
	ctx context.Context,
	role negotiator.Role,
	streamID types.StreamID,
	mediaType *format.Descriptor,
	flags types.SetTypeFlags,
) (_err error) {
	logger.Debugf(ctx, "setType(%s, %d, %s, %d)", role, streamID, mediaType, flags)
	defer func() {
		logger.Debugf(ctx, "/setType(%s, %d, %s, %d): %v", role, streamID, mediaType, flags, _err)
		observeError(ctx, _err)
	}()
	if logger.IsEnabled(ctx, logger.LevelTrace) {
		logger.Tracef(ctx, "media type: %s", spew.Sdump(mediaType))
	}

	if flags&^types.SetTypeTestOnly != 0 {
		return types.ErrInvalidArgument{Err: fmt.Errorf("unknown flags 0x%X", uint32(flags&^types.SetTypeTestOnly))}
	}
	if err := checkStream(streamID); err != nil {
		return err
	}
	return xsync.DoA4R1(ctx, &g.locker, g.setTypeLocked, ctx, role, mediaType, flags&types.SetTypeTestOnly != 0)
}

func (g *Grayscale) setTypeLocked(
	ctx context.Context,
	role negotiator.Role,
	mediaType *format.Descriptor,
	testOnly bool,
) error {
	if g.pending != nil {
		return types.ErrCannotChangeMediaType{}
	}

	if err := g.negotiator.Propose(role, mediaType, testOnly); err != nil {
		return err
	}
	if testOnly {
		return nil
	}

	if role == negotiator.RoleInput {
		if geometry := g.negotiator.Geometry(); !geometry.IsZero() {
			logger.Debugf(ctx,
				"input geometry: %dx%d %s, image size %s, default stride %d",
				geometry.Width, geometry.Height, geometry.Subtype,
				humanize.IBytes(uint64(geometry.ImageSize)), geometry.DefaultStride,
			)
		}
	}

	// streaming parameters depend on the types
	g.endStreamingLocked(ctx)
	return nil
}

// GetInputCurrentType returns a copy of the current input type.
func (g *Grayscale) GetInputCurrentType(
	ctx context.Context,
	streamID types.StreamID,
) (*format.Descriptor, error) {
	return g.getCurrentType(ctx, negotiator.RoleInput, streamID)
}

// GetOutputCurrentType returns a copy of the current output type.
func (g *Grayscale) GetOutputCurrentType(
	ctx context.Context,
	streamID types.StreamID,
) (*format.Descriptor, error) {
	return g.getCurrentType(ctx, negotiator.RoleOutput, streamID)
}

func (g *Grayscale) getCurrentType(
	ctx context.Context,
	role negotiator.Role,
	streamID types.StreamID,
) (*format.Descriptor, error) {
	if err := checkStream(streamID); err != nil {
		return nil, err
	}
	return xsync.DoA1R2(ctx, &g.locker, g.negotiator.Current, role)
}
