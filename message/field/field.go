package field

import (
	"fmt"
)

// Field is a single header field, a name paired with an opaque body. Values
// of this type are immutable once constructed. The name and body are plain
// text and are only suitable for the wire once they pass CheckText.
type Field struct {
	name string
	body string
}

// New constructs a field from the given name and body. No validation is
// performed here. Validation happens when the message holding the field is
// finalized.
func New(name, body string) *Field {
	return &Field{name, body}
}

// Name returns the name of the header field.
func (f *Field) Name() string {
	return f.name
}

// Body returns the value of the header field as a string.
func (f *Field) Body() string {
	return f.body
}

// String returns the complete header field as a string.
func (f *Field) String() string {
	return fmt.Sprintf("%s: %s", f.name, f.body)
}

// Bytes returns the complete header field in its wire charset.
func (f *Field) Bytes() ([]byte, error) {
	return EncodeText(f.String())
}
