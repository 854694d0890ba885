// duration.go provides utilities for converting between FFmpeg timestamps and time.Duration.

// Package avconv converts between libav values and the values used by this module.
package avconv

import (
	"math"
	"time"

	"github.com/asticode/go-astiav"
	"github.com/xaionaro-go/typing"
)

const (
	noDuration = time.Duration(math.MinInt64)
)

// Duration converts a timestamp in timeBase units; astiav.NoPtsValue
// (and a zero time base) gives no value.
func Duration(t int64, timeBase astiav.Rational) typing.Optional[time.Duration] {
	if t == astiav.NoPtsValue || timeBase.Num() == 0 || timeBase.Den() == 0 {
		return typing.Optional[time.Duration]{}
	}

	return typing.Opt(time.Duration(math.Round(float64(t) * timeBase.Float64() * float64(time.Second))))
}

// FromDuration converts the duration into timeBase units.
func FromDuration(d time.Duration, timeBase astiav.Rational) int64 {
	if d == noDuration || timeBase.Num() == 0 {
		return astiav.NoPtsValue
	}

	return int64(math.Round(d.Seconds() / timeBase.Float64()))
}
