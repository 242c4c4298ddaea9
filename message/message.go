package message

import (
	"fmt"
)

// Message is the validated, immutable content of a single frame. It is
// simply a header and a body, both held as text.
//
// The Header is the concatenation of every "name: body" header field the
// message carries. The concatenation order follows the Buffer's field map
// iteration order, which is unspecified: two messages built from the same
// fields may not render byte-identical frames. The format inserts no
// separator between consecutive fields, so the Header round-trips only as a
// single string, not as recoverable individual fields.
//
// The Body is opaque text. A message built without a body has an empty Body.
//
// Construct a Message with Buffer.Message() or Parse(). Both guarantee the
// content is representable on the wire. A Message assembled directly as a
// struct literal bypasses that guarantee and WriteTo will surface any
// charset problem instead.
type Message struct {
	// Header holds the concatenated header field text.
	Header string

	// Body holds the body text.
	Body string
}

// Equals returns true if the other message carries the same header text and
// body text.
func (m *Message) Equals(other *Message) bool {
	return other != nil && m.Header == other.Header && m.Body == other.Body
}

// String renders the message in a frame-shaped debugging form showing the
// sentinel positions, the header length field, and the two text sections. It
// is not the wire form; use Bytes() or WriteTo() for that.
func (m *Message) String() string {
	return fmt.Sprintf("[0x1][0x2][%d][%q][0x3][0x2][%q][0x4]",
		len(m.Header)+1, m.Header, m.Body)
}
