package buffer

import (
	"fmt"
)

// Memory is a Buffer backed by a Go slice.
type Memory struct {
	Data          []byte
	currentLength uint32
	lockedFlags   LockFlags
}

var _ Buffer = (*Memory)(nil)

func NewMemory(size uint32) *Memory {
	return &Memory{
		Data: make([]byte, size),
	}
}

// NewMemoryFromBytes wraps the slice; the current length is the length of the slice.
func NewMemoryFromBytes(b []byte) *Memory {
	return &Memory{
		Data:          b,
		currentLength: uint32(len(b)),
	}
}

func (m *Memory) Lock(flags LockFlags) ([]byte, error) {
	if m.lockedFlags != 0 {
		return nil, fmt.Errorf("the buffer is already locked (%s)", m.lockedFlags)
	}
	if flags&LockFlagsReadWrite == 0 {
		return nil, fmt.Errorf("invalid lock flags %s", flags)
	}
	m.lockedFlags = flags
	return m.Data, nil
}

func (m *Memory) Unlock() error {
	if m.lockedFlags == 0 {
		return fmt.Errorf("the buffer is not locked")
	}
	m.lockedFlags = 0
	return nil
}

func (m *Memory) IsLocked() bool {
	return m.lockedFlags != 0
}

func (m *Memory) MaxLength() uint32 {
	return uint32(len(m.Data))
}

func (m *Memory) CurrentLength() uint32 {
	return m.currentLength
}

func (m *Memory) SetCurrentLength(l uint32) error {
	if l > m.MaxLength() {
		return fmt.Errorf("the length %d exceeds the buffer size %d", l, m.MaxLength())
	}
	m.currentLength = l
	return nil
}

// Bytes returns the first CurrentLength bytes.
func (m *Memory) Bytes() []byte {
	return m.Data[:m.currentLength]
}

// Memory2D is a Memory with a known stride.
type Memory2D struct {
	Memory
	Stride int
}

var _ Buffer2D = (*Memory2D)(nil)

func NewMemory2D(stride int, rows int) *Memory2D {
	return &Memory2D{
		Memory: Memory{
			Data: make([]byte, stride*rows),
		},
		Stride: stride,
	}
}

func (m *Memory2D) Lock2D(flags LockFlags) ([]byte, int, error) {
	b, err := m.Lock(flags)
	if err != nil {
		return nil, 0, err
	}
	return b, m.Stride, nil
}

func (m *Memory2D) Unlock2D() error {
	return m.Unlock()
}
