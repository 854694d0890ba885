// frame.go defines the Sample interface for media frames.

// Package frame provides the frame handle consumed by the grayscale transform.
package frame

import (
	"time"

	"github.com/xaionaro-go/avgrayscale/buffer"
	"github.com/xaionaro-go/typing"
)

// Sample is a media frame: timing metadata plus the pixel data.
type Sample interface {
	GetDuration() typing.Optional[time.Duration]
	SetDuration(time.Duration) error
	GetTimestamp() typing.Optional[time.Duration]
	SetTimestamp(time.Duration) error

	// ContiguousBuffer returns the pixel data as a single lockable buffer.
	ContiguousBuffer() (buffer.Buffer, error)
}

// Releaser is implemented by samples that want to know when
// a holder drops its reference.
type Releaser interface {
	Release()
}

// Release calls s.Release if s implements Releaser.
func Release(s Sample) {
	if r, ok := s.(Releaser); ok {
		r.Release()
	}
}
