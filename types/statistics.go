package types

import (
	"go.uber.org/atomic"
)

type StatisticsItem struct {
	Count uint64 `json:",omitempty"`
	Bytes uint64 `json:",omitempty"`
}

type Statistics struct {
	Accepted StatisticsItem
	Produced StatisticsItem
	Flushed  StatisticsItem
	Failed   StatisticsItem
}

type CountersItem struct {
	Count atomic.Uint64
	Bytes atomic.Uint64
}

func (c *CountersItem) Increment(msgSize uint64) {
	c.Count.Add(1)
	c.Bytes.Add(msgSize)
}

func (c *CountersItem) ToStats() StatisticsItem {
	return StatisticsItem{
		Count: c.Count.Load(),
		Bytes: c.Bytes.Load(),
	}
}

// Counters are the live frame counters of a transform instance.
//
// Accepted counts frames taken by ProcessInput, Produced counts output frames
// (with the bytes written), Flushed counts pending frames dropped by a flush and
// Failed counts pending frames released by a failed ProcessOutput.
type Counters struct {
	Accepted CountersItem
	Produced CountersItem
	Flushed  CountersItem
	Failed   CountersItem
}

func (c *Counters) ToStats() Statistics {
	return Statistics{
		Accepted: c.Accepted.ToStats(),
		Produced: c.Produced.ToStats(),
		Flushed:  c.Flushed.ToStats(),
		Failed:   c.Failed.ToStats(),
	}
}
