// error.go defines the error kinds reported by the grayscale transform.

package types

import "fmt"

// ErrInvalidArgument is returned for malformed call parameters
// (nil required values, reserved flags set, wrong buffer counts).
type ErrInvalidArgument struct {
	Err error
}

func (e ErrInvalidArgument) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid argument: %v", e.Err)
	}
	return "invalid argument"
}

func (e ErrInvalidArgument) Unwrap() error {
	return e.Err
}

// ErrInvalidStream is returned for a stream index other than 0.
type ErrInvalidStream struct {
	StreamID uint32
}

func (e ErrInvalidStream) Error() string {
	return fmt.Sprintf("invalid stream number: %d", e.StreamID)
}

// ErrInvalidFormat is returned when a format is not acceptable
// or does not match the format of the opposite stream.
type ErrInvalidFormat struct {
	Err error
}

func (e ErrInvalidFormat) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid media type: %v", e.Err)
	}
	return "invalid media type"
}

func (e ErrInvalidFormat) Unwrap() error {
	return e.Err
}

type ErrTypeNotSet struct{}

func (ErrTypeNotSet) Error() string {
	return "the media type is not set"
}

type ErrNotAccepting struct {
	Reason string
}

func (e ErrNotAccepting) Error() string {
	if e.Reason != "" {
		return "not accepting input: " + e.Reason
	}
	return "not accepting input"
}

type ErrCannotChangeMediaType struct{}

func (ErrCannotChangeMediaType) Error() string {
	return "cannot change the media type while processing"
}

type ErrNeedMoreInput struct{}

func (ErrNeedMoreInput) Error() string {
	return "need more input"
}

type ErrNoMoreFormats struct{}

func (ErrNoMoreFormats) Error() string {
	return "no more media types"
}

// ErrOverflow is returned when a geometry computation exceeds the uint32 range.
type ErrOverflow struct {
	Err error
}

func (e ErrOverflow) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("arithmetic overflow: %v", e.Err)
	}
	return "arithmetic overflow"
}

func (e ErrOverflow) Unwrap() error {
	return e.Err
}

type ErrNotImplemented struct {
	Err error
}

func (e ErrNotImplemented) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("not implemented: %v", e.Err)
	}
	return "not implemented"
}

func (e ErrNotImplemented) Unwrap() error {
	return e.Err
}

// ErrUnexpected signals a violated internal invariant.
type ErrUnexpected struct {
	Err error
}

func (e ErrUnexpected) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unexpected: %v", e.Err)
	}
	return "unexpected"
}

func (e ErrUnexpected) Unwrap() error {
	return e.Err
}
