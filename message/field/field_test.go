package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-wireframe/message/field"
)

func TestField(t *testing.T) {
	t.Parallel()

	f := field.New("Content-Type", "text/html")
	assert.Equal(t, "Content-Type", f.Name())
	assert.Equal(t, "text/html", f.Body())
	assert.Equal(t, "Content-Type: text/html", f.String())

	b, err := f.Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte("Content-Type: text/html"), b)
}

func TestField_WireCharset(t *testing.T) {
	t.Parallel()

	f := field.New("Subject", "café")
	b, err := f.Bytes()
	require.NoError(t, err)

	// é is a single byte on the wire
	assert.Equal(t, []byte{'S', 'u', 'b', 'j', 'e', 'c', 't', ':', ' ', 'c', 'a', 'f', 0xe9}, b)

	f = field.New("Subject", "日本語")
	_, err = f.Bytes()
	assert.ErrorIs(t, err, field.ErrCharset)
}
