// streams.go implements the stream configuration queries of the transform.

package avgrayscale

import (
	"context"
	"fmt"
	"time"

	"github.com/xaionaro-go/avgrayscale/attributes"
	"github.com/xaionaro-go/avgrayscale/logger"
	"github.com/xaionaro-go/avgrayscale/negotiator"
	"github.com/xaionaro-go/avgrayscale/types"
	"github.com/xaionaro-go/xsync"
)

// GetStreamLimits returns the minimum and maximum number of streams,
// which are fixed to one input and one output.
func (g *Grayscale) GetStreamLimits() types.StreamLimits {
	return types.StreamLimits{
		InputMinimum:  1,
		InputMaximum:  1,
		OutputMinimum: 1,
		OutputMaximum: 1,
	}
}

func (g *Grayscale) GetStreamCount() (inputStreams, outputStreams uint32) {
	return 1, 1
}

// GetStreamIDs is not implemented: stream IDs match the stream indexes.
func (g *Grayscale) GetStreamIDs() ([]types.StreamID, []types.StreamID, error) {
	return nil, nil, types.ErrNotImplemented{Err: fmt.Errorf("the stream IDs are the stream indexes")}
}

func (g *Grayscale) GetInputStreamInfo(
	ctx context.Context,
	streamID types.StreamID,
) (types.InputStreamInfo, error) {
	if err := checkStream(streamID); err != nil {
		return types.InputStreamInfo{}, err
	}
	return xsync.DoR1(ctx, &g.locker, func() types.InputStreamInfo {
		info := types.InputStreamInfo{
			Flags: types.InputStreamWholeSamples | types.InputStreamSingleSamplePerBuffer,
		}
		if g.negotiator.IsSet(negotiator.RoleInput) {
			info.Size = g.negotiator.Geometry().ImageSize
		}
		return info
	}), nil
}

func (g *Grayscale) GetOutputStreamInfo(
	ctx context.Context,
	streamID types.StreamID,
) (types.OutputStreamInfo, error) {
	if err := checkStream(streamID); err != nil {
		return types.OutputStreamInfo{}, err
	}
	return xsync.DoR1(ctx, &g.locker, func() types.OutputStreamInfo {
		info := types.OutputStreamInfo{
			Flags: types.OutputStreamWholeSamples |
				types.OutputStreamSingleSamplePerBuffer |
				types.OutputStreamFixedSampleSize,
		}
		if g.negotiator.IsSet(negotiator.RoleOutput) {
			info.Size = g.negotiator.Geometry().ImageSize
		}
		return info
	}), nil
}

// GetAttributes returns the attribute store of the transform.
func (g *Grayscale) GetAttributes(ctx context.Context) *attributes.Store {
	return xsync.DoR1(ctx, &g.locker, func() *attributes.Store {
		return g.attributes
	})
}

func (g *Grayscale) GetInputStreamAttributes(
	ctx context.Context,
	streamID types.StreamID,
) (*attributes.Store, error) {
	return nil, types.ErrNotImplemented{Err: fmt.Errorf("stream-level attributes are not supported")}
}

func (g *Grayscale) GetOutputStreamAttributes(
	ctx context.Context,
	streamID types.StreamID,
) (*attributes.Store, error) {
	return nil, types.ErrNotImplemented{Err: fmt.Errorf("stream-level attributes are not supported")}
}

func (g *Grayscale) DeleteInputStream(
	ctx context.Context,
	streamID types.StreamID,
) error {
	return types.ErrNotImplemented{Err: fmt.Errorf("the number of streams is fixed")}
}

func (g *Grayscale) AddInputStreams(
	ctx context.Context,
	streamIDs []types.StreamID,
) error {
	return types.ErrNotImplemented{Err: fmt.Errorf("the number of streams is fixed")}
}

func (g *Grayscale) SetOutputBounds(
	ctx context.Context,
	lowerBound, upperBound time.Duration,
) error {
	return types.ErrNotImplemented{Err: fmt.Errorf("output bounds are not supported")}
}

// ProcessEvent is not implemented, so the host may stop sending events.
func (g *Grayscale) ProcessEvent(
	ctx context.Context,
	streamID types.StreamID,
	event any,
) error {
	logger.Debugf(ctx, "ProcessEvent(%d, %T): not implemented", streamID, event)
	return types.ErrNotImplemented{Err: fmt.Errorf("stream events are not handled")}
}
