package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type item struct {
	Value int
}

func TestPool(t *testing.T) {
	p := NewPool(
		func() *item { return &item{} },
		func(v *item) { v.Value = 0 },
		func(v *item) {},
	)

	v := p.Get()
	require.NotNil(t, v)
	require.Equal(t, uint64(1), p.Allocated())

	v.Value = 42
	p.Put(v, nil)
	require.Zero(t, v.Value)
	require.Equal(t, uint64(1), p.Returned())

	// the pool may or may not have kept the item, but it must be reset
	require.Zero(t, p.Get().Value)
}
