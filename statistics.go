package avgrayscale

import (
	"github.com/xaionaro-go/avgrayscale/types"
)

type Statistics = types.Statistics

type CommonsProcessing struct {
	Counters types.Counters
}

func (p *CommonsProcessing) GetStats() Statistics {
	return p.Counters.ToStats()
}
