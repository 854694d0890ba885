// pool.go implements a generic object pool with finalizers.

// Package pool provides a generic object pool whose objects are freed by
// finalizers, for objects allocated outside of the Go heap.
package pool

import (
	"runtime"
	"sync"

	"go.uber.org/atomic"
)

var ReuseMemory = true

type Pool[T any] struct {
	sync.Pool
	ResetFunc func(*T)

	allocated atomic.Uint64
	reused    atomic.Uint64
}

func NewPool[T any](
	allocFunc func() *T,
	resetFunc func(*T),
	freeFunc func(*T),
) *Pool[T] {
	p := &Pool[T]{
		ResetFunc: resetFunc,
	}
	p.Pool.New = func() any {
		p.allocated.Inc()
		v := allocFunc()
		runtime.SetFinalizer(v, func(v *T) {
			freeFunc(v)
		})
		return v
	}
	return p
}

func (p *Pool[T]) Get() *T {
	return p.Pool.Get().(*T)
}

// Put resets the items and returns them to the pool.
func (p *Pool[T]) Put(items ...*T) {
	if !ReuseMemory {
		return
	}
	for _, item := range items {
		if item == nil {
			continue
		}
		p.ResetFunc(item)
		p.reused.Inc()
		p.Pool.Put(item)
	}
}

// Allocated returns how many objects were allocated by the pool.
func (p *Pool[T]) Allocated() uint64 {
	return p.allocated.Load()
}

// Returned returns how many objects were put back to the pool.
func (p *Pool[T]) Returned() uint64 {
	return p.reused.Load()
}
