// buffer.go defines the lockable media buffer abstractions.

// Package buffer provides lockable media buffers and the scoped video buffer lock.
package buffer

import "fmt"

type LockFlags int

const (
	LockFlagsRead = LockFlags(1 << iota)
	LockFlagsWrite
	LockFlagsReadWrite = LockFlagsRead | LockFlagsWrite
)

func (f LockFlags) String() string {
	switch f {
	case LockFlagsRead:
		return "read"
	case LockFlagsWrite:
		return "write"
	case LockFlagsReadWrite:
		return "read-write"
	default:
		return fmt.Sprintf("LockFlags(%d)", int(f))
	}
}

// Buffer is a contiguous block of memory.
type Buffer interface {
	// Lock gives access to the whole memory block until Unlock is called.
	Lock(flags LockFlags) ([]byte, error)
	Unlock() error

	MaxLength() uint32
	CurrentLength() uint32
	SetCurrentLength(uint32) error
}

// Buffer2D is a Buffer that knows its own row layout.
type Buffer2D interface {
	Buffer

	// Lock2D returns the memory starting at the top row and the stride
	// (the distance between rows in bytes).
	Lock2D(flags LockFlags) ([]byte, int, error)
	Unlock2D() error
}
