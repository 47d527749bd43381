package resp

import "errors"

// The decoder surfaces exactly three kinds of failure; callers branch on
// identity via errors.Is, not on message text, so wrapping below always
// keeps one of these three as the tail of the chain.
var (
	// ErrIncompleteFrame means the buffer doesn't yet hold a full frame.
	// The buffer is guaranteed untouched; the caller should wait for more
	// bytes and retry with the same prefix plus whatever arrives next.
	ErrIncompleteFrame = errors.New("resp: incomplete frame")

	// ErrInvalidFrameType means a tag byte or fixed token didn't match
	// what was expected. This is a protocol violation; the connection
	// should be closed.
	ErrInvalidFrameType = errors.New("resp: invalid frame type")

	// ErrParseInt means a length or integer header wasn't valid decimal
	// ASCII. This is a protocol violation; the connection should be
	// closed.
	ErrParseInt = errors.New("resp: invalid integer header")
)
