package message

import (
	"bytes"
	"encoding/binary"
	"errors"

	"github.com/zostay/go-wireframe/message/field"
)

// Errors that occur during parsing. Every one of them is a structural
// complaint about the input buffer; none of them is fatal.
var (
	// ErrFrameEmpty is returned by Parse when the input is empty.
	ErrFrameEmpty = errors.New("frame is empty")

	// ErrFrameShort is returned by Parse when the input is shorter than
	// MinFrameLen.
	ErrFrameShort = errors.New("frame is shorter than the minimum frame size")

	// ErrFrameStart is returned by Parse when the input does not begin with
	// the start-of-message and start-of-field markers.
	ErrFrameStart = errors.New("frame does not begin with the start-of-message marker")

	// ErrFrameEnd is returned by Parse when the input does not end with the
	// end-of-message marker.
	ErrFrameEnd = errors.New("frame does not end with the end-of-message marker")

	// ErrHeaderLength is returned by Parse when the header length field is
	// zero or points past the end of the input.
	ErrHeaderLength = errors.New("frame header length points past the end of the frame")

	// ErrHeaderTerminator is returned by Parse when the region covered by
	// the header length field does not end with a nul byte.
	ErrHeaderTerminator = errors.New("frame header text is not nul-terminated")

	// ErrBodyStart is returned by Parse when no start-of-field marker is
	// found between the header region and the end of the frame.
	ErrBodyStart = errors.New("frame has no start-of-body marker")

	// ErrBodyTerminator is returned by Parse when the body is not followed
	// by a nul byte before the end-of-message marker.
	ErrBodyTerminator = errors.New("frame body is not nul-terminated")
)

// Parse recovers a Message from its wire form. The input is treated as
// untrusted: it may be empty, truncated, or arbitrary bytes, and Parse will
// answer with one of the Err* values above rather than panic or read out of
// bounds. Every offset derived from the input, including the declared header
// length, is checked against the input's actual length before use.
//
// The structural checks proceed in order:
//
//  1. the input is at least MinFrameLen bytes, begins with 0x01 0x02, and
//     ends with 0x04;
//  2. the two-byte little-endian header length at offset 2 is at least one
//     and leaves room for the end-of-message marker;
//  3. the region it covers, starting at offset 4, ends with the header's
//     nul terminator;
//  4. the body begins after the next start-of-field marker at or beyond the
//     end of the header region. The encoder always puts 0x03 0x02 there, but
//     the decoder scans rather than assuming a fixed offset;
//  5. the body runs to the nul terminator preceding the final 0x04.
//
// A message recovered by Parse always re-encodes without error. If the
// frame was produced by WriteTo, it re-encodes byte-identically; a frame
// with extra bytes between the header region and the body marker is
// canonicalized instead.
func Parse(input []byte) (*Message, error) {
	switch {
	case len(input) == 0:
		return nil, ErrFrameEmpty
	case len(input) < MinFrameLen:
		return nil, ErrFrameShort
	}

	if input[0] != byteStart || input[1] != byteField {
		return nil, ErrFrameStart
	}
	if input[len(input)-1] != byteEnd {
		return nil, ErrFrameEnd
	}

	hdrLen := int(binary.LittleEndian.Uint16(input[2:4]))
	if hdrLen < 1 || 4+hdrLen > len(input)-1 {
		return nil, ErrHeaderLength
	}
	region := input[4 : 4+hdrLen]
	if region[hdrLen-1] != 0x00 {
		return nil, ErrHeaderTerminator
	}
	hdr := region[:hdrLen-1]

	rest := input[4+hdrLen : len(input)-1]
	ix := bytes.IndexByte(rest, byteField)
	if ix < 0 {
		return nil, ErrBodyStart
	}
	bodyStart := 4 + hdrLen + ix + 1
	bodyEnd := len(input) - 2
	if bodyStart > bodyEnd {
		return nil, ErrBodyStart
	}
	if input[bodyEnd] != 0x00 {
		return nil, ErrBodyTerminator
	}
	body := input[bodyStart:bodyEnd]

	return &Message{
		Header: field.DecodeText(hdr),
		Body:   field.DecodeText(body),
	}, nil
}
