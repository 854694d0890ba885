package internal

import (
	"context"
	"runtime"

	"github.com/xaionaro-go/avgrayscale/logger"
)

// SetFinalizerFree frees the object when it is garbage collected.
func SetFinalizerFree[T interface{ Free() }](
	ctx context.Context,
	freer T,
) {
	runtime.SetFinalizer(freer, func(freer T) {
		logger.Debugf(ctx, "freeing %T", freer)
		freer.Free()
	})
}
