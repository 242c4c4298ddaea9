// Package sink provides the byte-sink strategies a frame can be encoded
// into. The codec itself writes to a plain io.Writer; the types here exist
// so the two memory strategies named by the format, unbounded heap
// allocation and a fixed-capacity buffer, satisfy the same encode contract
// and differ only in how they fail.
package sink

import (
	"bytes"
	"errors"
)

// ErrCapacity is returned by Fixed.Write when a write would not fit in the
// sink's remaining capacity. Running out of room is a recoverable encoding
// failure, not a fatal one.
var ErrCapacity = errors.New("encoded frame exceeds the sink's capacity")

// Sink is a destination for an encoded frame.
type Sink interface {
	// Write appends bytes to the sink, satisfying io.Writer.
	Write(p []byte) (int, error)

	// Bytes returns the bytes written so far.
	Bytes() []byte

	// Len returns the number of bytes written so far.
	Len() int
}

// Grow is a Sink backed by ordinary heap allocation with no fixed upper
// bound. The zero value is ready for use.
type Grow struct {
	buf bytes.Buffer
}

// NewGrow returns an empty growable sink.
func NewGrow() *Grow {
	return &Grow{}
}

// Write appends p to the sink. It never fails.
func (s *Grow) Write(p []byte) (int, error) {
	return s.buf.Write(p)
}

// Bytes returns the bytes written so far.
func (s *Grow) Bytes() []byte {
	return s.buf.Bytes()
}

// Len returns the number of bytes written so far.
func (s *Grow) Len() int {
	return s.buf.Len()
}

// Fixed is a Sink with a capacity fixed at construction, for targets where
// the output buffer is a preallocated block. A write that would exceed the
// capacity fails with ErrCapacity and leaves the sink's contents unchanged;
// nothing is partially applied.
type Fixed struct {
	buf []byte
}

// NewFixed returns an empty sink that holds at most capacity bytes.
func NewFixed(capacity int) *Fixed {
	return &Fixed{buf: make([]byte, 0, capacity)}
}

// Write appends p to the sink, or fails with ErrCapacity if p does not fit
// in the remaining capacity.
func (s *Fixed) Write(p []byte) (int, error) {
	if len(s.buf)+len(p) > cap(s.buf) {
		return 0, ErrCapacity
	}
	s.buf = append(s.buf, p...)
	return len(p), nil
}

// Bytes returns the bytes written so far.
func (s *Fixed) Bytes() []byte {
	return s.buf
}

// Len returns the number of bytes written so far.
func (s *Fixed) Len() int {
	return len(s.buf)
}

// Cap returns the sink's fixed capacity.
func (s *Fixed) Cap() int {
	return cap(s.buf)
}
