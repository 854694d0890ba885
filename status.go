package avgrayscale

import (
	"context"

	"github.com/xaionaro-go/avgrayscale/types"
	"github.com/xaionaro-go/xsync"
)

// GetInputStatus reports whether the transform can accept a new input frame.
func (g *Grayscale) GetInputStatus(
	ctx context.Context,
	streamID types.StreamID,
) (types.InputStatusFlags, error) {
	if err := checkStream(streamID); err != nil {
		return 0, err
	}
	return xsync.DoR1(ctx, &g.locker, func() types.InputStatusFlags {
		if g.pending != nil {
			return 0
		}
		return types.InputStatusAcceptData
	}), nil
}

// GetOutputStatus reports whether an output frame can be produced.
func (g *Grayscale) GetOutputStatus(
	ctx context.Context,
) types.OutputStatusFlags {
	return xsync.DoR1(ctx, &g.locker, func() types.OutputStatusFlags {
		if g.pending == nil {
			return 0
		}
		return types.OutputStatusSampleReady
	})
}
