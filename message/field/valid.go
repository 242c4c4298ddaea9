package field

import (
	"errors"

	"golang.org/x/text/encoding/charmap"
)

// Errors returned when text is not permissible as frame content.
var (
	// ErrNulByte is returned by CheckText when the text contains a nul
	// byte. The wire format nul-terminates both the header text and the
	// body, so content must be nul-free.
	ErrNulByte = errors.New("text contains a nul byte")

	// ErrSentinel is returned by CheckText when the text contains one of
	// the reserved framing bytes 0x01 through 0x04. The codec does not
	// escape sentinels, so they are forbidden in content.
	ErrSentinel = errors.New("text contains a reserved framing byte")

	// ErrCharset is returned by CheckText and EncodeText when the text
	// contains a rune that has no single-byte representation in the wire
	// charset.
	ErrCharset = errors.New("text is not representable in the wire charset")
)

// Charmap is the single-byte charset used on the wire. The frame format
// assumes one byte per character, so all content must be representable in
// this charset.
var Charmap = charmap.ISO8859_1

// CheckText reports whether s is permissible as frame content: no nul bytes,
// no reserved framing bytes, and every rune representable in the wire
// charset. It returns nil for permissible text and one of ErrNulByte,
// ErrSentinel, or ErrCharset otherwise.
func CheckText(s string) error {
	for _, r := range s {
		switch {
		case r == 0x00:
			return ErrNulByte
		case r >= 0x01 && r <= 0x04:
			return ErrSentinel
		}
		if _, ok := Charmap.EncodeRune(r); !ok {
			return ErrCharset
		}
	}
	return nil
}

// EncodeText transforms native text into its wire charset form, one byte per
// character. It returns ErrCharset if any rune has no representation there.
func EncodeText(s string) ([]byte, error) {
	out, err := Charmap.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, ErrCharset
	}
	return out, nil
}

// DecodeText transforms wire charset bytes back into native text. Every byte
// value is defined in the wire charset, so this cannot fail.
func DecodeText(wire []byte) string {
	out, err := Charmap.NewDecoder().Bytes(wire)
	if err != nil {
		// unreachable: ISO 8859-1 defines all 256 byte values
		return string(wire)
	}
	return string(out)
}
