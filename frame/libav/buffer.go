package libav

import (
	"fmt"

	"github.com/asticode/go-astiav"
	"github.com/xaionaro-go/avgrayscale/buffer"
)

// frameBuffer exposes the planes of a libav frame as a single contiguous
// buffer. Locking copies the planes out, unlocking a write lock copies
// the contents back into the frame.
type frameBuffer struct {
	frame         *astiav.Frame
	maxLength     uint32
	currentLength uint32

	lockedFlags buffer.LockFlags
	data        []byte
}

var _ buffer.Buffer = (*frameBuffer)(nil)

func (b *frameBuffer) Lock(flags buffer.LockFlags) ([]byte, error) {
	if b.lockedFlags != 0 {
		return nil, fmt.Errorf("the frame buffer is already locked (%s)", b.lockedFlags)
	}

	data, err := b.frame.Data().Bytes(bufferAlign)
	if err != nil {
		return nil, fmt.Errorf("unable to copy the frame data: %w", err)
	}
	b.lockedFlags = flags
	b.data = data
	return data, nil
}

func (b *frameBuffer) Unlock() error {
	if b.lockedFlags == 0 {
		return fmt.Errorf("the frame buffer is not locked")
	}
	flags, data := b.lockedFlags, b.data
	b.lockedFlags, b.data = 0, nil

	if flags&buffer.LockFlagsWrite == 0 {
		return nil
	}
	if err := b.frame.MakeWritable(); err != nil {
		return fmt.Errorf("unable to make the frame writable: %w", err)
	}
	if err := b.frame.Data().SetBytes(data, bufferAlign); err != nil {
		return fmt.Errorf("unable to copy the data into the frame: %w", err)
	}
	return nil
}

func (b *frameBuffer) MaxLength() uint32 {
	return b.maxLength
}

func (b *frameBuffer) CurrentLength() uint32 {
	return b.currentLength
}

func (b *frameBuffer) SetCurrentLength(l uint32) error {
	if l > b.maxLength {
		return fmt.Errorf("the length %d exceeds the frame size %d", l, b.maxLength)
	}
	b.currentLength = l
	return nil
}
