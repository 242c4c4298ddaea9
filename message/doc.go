// Package message is the heart of this library. It provides the tools for
// building a frame's content, rendering it to the wire, and recovering it
// from the wire (surviving even hostile input).
//
// You generate a Message by using a Buffer. Add header fields and a body to
// the Buffer and then call the Message() method to finalize it:
//
//	buf := &message.Buffer{}
//	msg, err := buf.
//	  AddHeader("Content-Type", "text/html").
//	  SetBody("<html><body><h1>Hello, world!</h1></body></html>").
//	  Message()
//	if err != nil {
//	  panic(err)
//	}
//
// Finalization is the single validation gate: it fails if any header name,
// header body, or message body contains a nul byte, a reserved framing byte,
// or a character with no single-byte wire representation. Once you hold a
// *Message, encoding it cannot produce invalid frames.
//
// The wire form of a message is produced by the Bytes() or WriteTo() methods
// and consumed by the Parse() function. Parse() treats its input as
// untrusted: every offset derived from the input is checked against the
// buffer's actual length before use, and malformed input is answered with an
// error, never a panic.
package message
