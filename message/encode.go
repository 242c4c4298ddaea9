package message

import (
	"encoding/binary"
	"errors"
	"io"
	"math"

	"github.com/zostay/go-wireframe/message/field"
	"github.com/zostay/go-wireframe/sink"
)

// The reserved framing sentinels. These bytes delimit the sections of a
// frame and are forbidden in message content because the codec never escapes
// them.
const (
	byteStart = 0x01 // start-of-message
	byteField = 0x02 // start-of-field
	byteBody  = 0x03 // transition to the body field
	byteEnd   = 0x04 // end-of-message
)

// MinFrameLen is the wire size of a frame with an empty header and an empty
// body. No valid frame is shorter.
const MinFrameLen = 9

// ErrHeaderTooLong is returned by WriteTo when the header text is too long
// for its length to fit the frame's two-byte length field.
var ErrHeaderTooLong = errors.New("header exceeds the wire format's length limit")

// WriteTo renders the message to its wire form on w:
//
//	[0x01] [0x02] [header_len: u16 LE] [header] [0x00]
//	[0x03] [0x02] [body] [0x00]
//	[0x04]
//
// The header_len field covers the header text plus the nul terminator that
// follows it, so it is always the header's wire length plus one.
//
// For a message produced by Buffer.Message() or Parse(), the only possible
// failures are ErrHeaderTooLong and errors from w itself; in particular a
// write into a sink.Fixed that is too small fails with sink.ErrCapacity,
// leaving whatever was already written in place. A message assembled as a
// struct literal may additionally fail with field.ErrCharset.
func (m *Message) WriteTo(w io.Writer) (int64, error) {
	hdr, err := field.EncodeText(m.Header)
	if err != nil {
		return 0, err
	}
	body, err := field.EncodeText(m.Body)
	if err != nil {
		return 0, err
	}

	if len(hdr)+1 > math.MaxUint16 {
		return 0, ErrHeaderTooLong
	}
	var hdrLen [2]byte
	binary.LittleEndian.PutUint16(hdrLen[:], uint16(len(hdr)+1))

	var total int64
	for _, section := range [][]byte{
		{byteStart, byteField},
		hdrLen[:],
		hdr,
		{0x00, byteBody, byteField},
		body,
		{0x00, byteEnd},
	} {
		n, err := w.Write(section)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	return total, nil
}

// Bytes renders the message to its wire form in a freshly allocated buffer.
// It assumes a validated message; use WriteTo if you need to observe
// encoding errors or to target a fixed-capacity sink.
func (m *Message) Bytes() []byte {
	s := sink.NewGrow()
	_, _ = m.WriteTo(s)
	return s.Bytes()
}
