package types

import "time"

// StreamID is a stream index; the transform has exactly one stream per direction.
type StreamID = uint32

type StreamLimits struct {
	InputMinimum  uint32
	InputMaximum  uint32
	OutputMinimum uint32
	OutputMaximum uint32
}

type InputStreamInfoFlags uint32

const (
	InputStreamWholeSamples          = InputStreamInfoFlags(0x1)
	InputStreamSingleSamplePerBuffer = InputStreamInfoFlags(0x2)
	InputStreamFixedSampleSize       = InputStreamInfoFlags(0x4)
)

type InputStreamInfo struct {
	MaxLatency   time.Duration
	Flags        InputStreamInfoFlags
	Size         uint32
	MaxLookahead uint32
	Alignment    uint32
}

type OutputStreamInfoFlags uint32

const (
	OutputStreamWholeSamples          = OutputStreamInfoFlags(0x1)
	OutputStreamSingleSamplePerBuffer = OutputStreamInfoFlags(0x2)
	OutputStreamFixedSampleSize       = OutputStreamInfoFlags(0x4)
)

type OutputStreamInfo struct {
	Flags     OutputStreamInfoFlags
	Size      uint32
	Alignment uint32
}

type InputStatusFlags uint32

const (
	InputStatusAcceptData = InputStatusFlags(0x1)
)

type OutputStatusFlags uint32

const (
	OutputStatusSampleReady = OutputStatusFlags(0x1)
)

type SetTypeFlags uint32

const (
	// SetTypeTestOnly makes SetInputType/SetOutputType validate without committing.
	SetTypeTestOnly = SetTypeFlags(0x1)
)

type ProcessOutputFlags uint32

type ProcessInputFlags uint32
