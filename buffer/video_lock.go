package buffer

import (
	"context"
	"fmt"

	"github.com/asticode/go-astikit"
	"github.com/xaionaro-go/avgrayscale/logger"
	"github.com/xaionaro-go/avgrayscale/types"
)

// VideoLock is a locked video buffer; Close releases the lock.
type VideoLock struct {
	TopRow []byte
	Stride int

	closer *astikit.Closer
}

// LockVideo locks buf for the duration of the returned VideoLock.
//
// A Buffer2D provides its own stride; for other buffers defaultStride is used.
// The lock is registered in the closer (if any), so it is released when
// the closer is closed even if the VideoLock is not closed explicitly.
func LockVideo(
	ctx context.Context,
	closer *astikit.Closer,
	buf Buffer,
	flags LockFlags,
	height uint32,
	defaultStride int32,
) (_ret *VideoLock, _err error) {
	logger.Tracef(ctx, "LockVideo(%s, %d, %d)", flags, height, defaultStride)
	defer func() { logger.Tracef(ctx, "/LockVideo(%s, %d, %d): %v", flags, height, defaultStride, _err) }()

	if buf == nil {
		return nil, types.ErrInvalidArgument{Err: fmt.Errorf("the buffer is nil")}
	}

	l := &VideoLock{
		closer: astikit.NewCloser(),
	}

	if buf2D, ok := buf.(Buffer2D); ok {
		topRow, stride, err := buf2D.Lock2D(flags)
		if err != nil {
			return nil, fmt.Errorf("unable to lock the 2D buffer for %s: %w", flags, err)
		}
		l.closer.AddWithError(buf2D.Unlock2D)
		l.TopRow, l.Stride = topRow, stride
	} else {
		data, err := buf.Lock(flags)
		if err != nil {
			return nil, fmt.Errorf("unable to lock the buffer for %s: %w", flags, err)
		}
		l.closer.AddWithError(buf.Unlock)
		l.TopRow, l.Stride = data, int(defaultStride)
	}

	if l.Stride <= 0 {
		err := l.Close()
		return nil, types.ErrInvalidArgument{Err: fmt.Errorf("unsupported stride %d (bottom-up buffers are not supported), unlock result: %v", l.Stride, err)}
	}
	if closer != nil {
		closer.AddWithError(l.Close)
	}
	return l, nil
}

// Close releases the lock; it is safe to call it more than once.
func (l *VideoLock) Close() error {
	return l.closer.Close()
}
