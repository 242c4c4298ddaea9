// Package wireframe implements a minimal binary framing codec for messages
// made up of a set of header fields and an opaque body. It is aimed at
// constrained transports, such as serial links or tiny queue payloads, where
// pulling in a general serialization library is unwelcome and a fixed-overhead
// delimited format is all that is wanted.
//
// The code is split according to part of the problem. The message package
// holds the core of the codec: a message.Buffer is used to accumulate header
// fields and a body and is then finalized into a validated, immutable
// message.Message. The message can be rendered to its wire form with the
// Bytes() or WriteTo() methods and recovered from a wire buffer with the
// message.Parse() function. Parse() makes no assumptions about its input and
// is safe to point at bytes from an untrusted source.
//
// The sink package provides the two byte-sink strategies the codec can encode
// into. A sink.Grow is backed by ordinary heap allocation and never runs out
// of room. A sink.Fixed holds a fixed capacity set at construction, for
// targets where the output buffer is a preallocated block, and fails encoding
// with sink.ErrCapacity rather than growing.
//
// On the wire, a frame is bounded by reserved sentinel bytes and carries a
// little-endian length for the header text. These sentinels are never escaped
// by the codec, so they are forbidden in message content. See the message
// package documentation for the exact layout and the content rules.
package wireframe
