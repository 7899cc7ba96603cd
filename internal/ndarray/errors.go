package ndarray

import "github.com/pkg/errors"

// Common errors. Returned errors wrap one of these with call-site detail,
// so callers should match with errors.Is.
var (
	ErrInvalidShape      = errors.New("invalid shape")
	ErrStrideRank        = errors.New("strides rank does not match shape rank")
	ErrIndexCount        = errors.New("wrong number of indices")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrOffsetOutOfBuffer = errors.New("offset beyond backing buffer")
	ErrBroadcast         = errors.New("shapes not compatible for broadcasting")
	ErrUnknownLayout     = errors.New("unknown layout")
)
