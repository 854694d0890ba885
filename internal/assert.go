// Package internal contains helpers shared by the packages of this module.
package internal

import (
	"context"

	"github.com/xaionaro-go/avgrayscale/logger"
)

// Assert panics (through the logger) if mustBeTrue is false.
// It is used only for states that are impossible by construction.
func Assert(
	ctx context.Context,
	mustBeTrue bool,
	extraArgs ...any,
) {
	if mustBeTrue {
		return
	}

	logger.Panic(ctx, "assertion failed", extraArgs)
}
