package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCountersToStats(t *testing.T) {
	var c Counters
	c.Accepted.Increment(0)
	c.Accepted.Increment(0)
	c.Produced.Increment(16)
	c.Produced.Increment(16)
	c.Flushed.Increment(0)

	require.Equal(t, Statistics{
		Accepted: StatisticsItem{Count: 2},
		Produced: StatisticsItem{Count: 2, Bytes: 32},
		Flushed:  StatisticsItem{Count: 1},
	}, c.ToStats())
}
