package avgrayscale

import (
	"github.com/xaionaro-go/avgrayscale/attributes"
)

type config struct {
	Attributes *attributes.Store
}

type Option interface {
	apply(*config)
}

type Options []Option

func (opts Options) config() config {
	cfg := config{}
	for _, opt := range opts {
		opt.apply(&cfg)
	}
	return cfg
}

// OptionAttributes makes the transform use the given attribute store.
type OptionAttributes struct {
	Store *attributes.Store
}

func (opt OptionAttributes) apply(cfg *config) {
	cfg.Attributes = opt.Store
}
