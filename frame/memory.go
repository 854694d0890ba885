package frame

import (
	"fmt"
	"time"

	"github.com/xaionaro-go/avgrayscale/buffer"
	"github.com/xaionaro-go/typing"
	"go.uber.org/atomic"
)

// Memory is a Sample holding its pixels in a Go-allocated buffer.
type Memory struct {
	Buffer    buffer.Buffer
	Duration  typing.Optional[time.Duration]
	Timestamp typing.Optional[time.Duration]

	releaseCount atomic.Uint64
}

var _ Sample = (*Memory)(nil)
var _ Releaser = (*Memory)(nil)

func NewMemory(buf buffer.Buffer) *Memory {
	return &Memory{
		Buffer: buf,
	}
}

// NewMemoryFromBytes wraps the bytes into a Memory sample.
func NewMemoryFromBytes(b []byte) *Memory {
	return NewMemory(buffer.NewMemoryFromBytes(b))
}

func (f *Memory) GetDuration() typing.Optional[time.Duration] {
	return f.Duration
}

func (f *Memory) SetDuration(d time.Duration) error {
	f.Duration = typing.Opt(d)
	return nil
}

func (f *Memory) GetTimestamp() typing.Optional[time.Duration] {
	return f.Timestamp
}

func (f *Memory) SetTimestamp(ts time.Duration) error {
	f.Timestamp = typing.Opt(ts)
	return nil
}

func (f *Memory) ContiguousBuffer() (buffer.Buffer, error) {
	if f.Buffer == nil {
		return nil, fmt.Errorf("the sample has no buffer")
	}
	return f.Buffer, nil
}

func (f *Memory) Release() {
	f.releaseCount.Inc()
}

// ReleaseCount returns how many times a holder released the sample.
func (f *Memory) ReleaseCount() uint64 {
	return f.releaseCount.Load()
}
