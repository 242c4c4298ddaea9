package message

import (
	"fmt"
	"strings"

	"github.com/zostay/go-wireframe/message/field"
)

// Buffer provides tools for constructing messages. The zero value is an
// empty buffer, ready for use.
//
// Header fields are accumulated with AddHeader. Fields are keyed by name and
// adding a field with a name already present replaces the previous body, so
// the finalized message carries at most one field per name. The body is set
// with SetBody; if it is never set, the finalized message has an empty body.
//
// Both mutators return the Buffer itself, so a message can be configured as
// a single chained expression ending in Message().
//
// Message() is the only place validation happens. Until then the Buffer
// accepts any strings. After Message() is called, the Buffer should be
// disposed of and no longer used.
type Buffer struct {
	fields map[string]string
	body   string
}

// AddHeader inserts the header field with the given name, replacing any
// previous field with the same name. It returns the Buffer for chaining.
func (b *Buffer) AddHeader(name, body string) *Buffer {
	if b.fields == nil {
		b.fields = make(map[string]string)
	}
	b.fields[name] = body
	return b
}

// SetBody sets the message body, replacing any previous body. It returns the
// Buffer for chaining.
func (b *Buffer) SetBody(body string) *Buffer {
	b.body = body
	return b
}

// Message finalizes the Buffer into a validated Message.
//
// The header text of the returned Message is the concatenation of
// "name: body" for every accumulated field, in the field map's iteration
// order. That order is unspecified and may differ between two otherwise
// identical builds. No separator is inserted between fields.
//
// Every field name, field body, and the message body must pass
// field.CheckText. A violation is the only way this method fails; the error
// wraps the matching sentinel (field.ErrNulByte, field.ErrSentinel, or
// field.ErrCharset) and names the offending part.
//
// After this method is called, the Buffer should be disposed of and no
// longer used.
func (b *Buffer) Message() (*Message, error) {
	hdr := &strings.Builder{}
	for name, body := range b.fields {
		if err := field.CheckText(name); err != nil {
			return nil, fmt.Errorf("header field name %q: %w", name, err)
		}
		if err := field.CheckText(body); err != nil {
			return nil, fmt.Errorf("header field %q body: %w", name, err)
		}
		hdr.WriteString(field.New(name, body).String())
	}

	if err := field.CheckText(b.body); err != nil {
		return nil, fmt.Errorf("message body: %w", err)
	}

	return &Message{
		Header: hdr.String(),
		Body:   b.body,
	}, nil
}
