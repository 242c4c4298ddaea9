package message_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-wireframe/message"
	"github.com/zostay/go-wireframe/message/field"
)

func TestBuffer(t *testing.T) {
	t.Parallel()

	buf := &message.Buffer{}
	m, err := buf.
		AddHeader("Content-Type", "text/html").
		SetBody("<html><body><h1>Hello, world!</h1></body></html>").
		Message()
	require.NoError(t, err)

	assert.Equal(t, "Content-Type: text/html", m.Header)
	assert.Equal(t, "<html><body><h1>Hello, world!</h1></body></html>", m.Body)
}

func TestBuffer_Empty(t *testing.T) {
	t.Parallel()

	m, err := (&message.Buffer{}).Message()
	require.NoError(t, err)

	assert.Empty(t, m.Header)
	assert.Empty(t, m.Body)
}

func TestBuffer_DefaultBody(t *testing.T) {
	t.Parallel()

	buf := &message.Buffer{}
	m, err := buf.AddHeader("Subject", "no body here").Message()
	require.NoError(t, err)

	assert.Equal(t, "Subject: no body here", m.Header)
	assert.Empty(t, m.Body)
}

func TestBuffer_OverwriteHeader(t *testing.T) {
	t.Parallel()

	buf := &message.Buffer{}
	m, err := buf.
		AddHeader("K", "v1").
		AddHeader("K", "v2").
		Message()
	require.NoError(t, err)

	// the last write for a given name wins and only a single field remains
	assert.Equal(t, "K: v2", m.Header)
}

func TestBuffer_FieldOrderUnspecified(t *testing.T) {
	t.Parallel()

	buf := &message.Buffer{}
	m, err := buf.
		AddHeader("A", "1").
		AddHeader("B", "2").
		Message()
	require.NoError(t, err)

	// the concatenation order follows map iteration and is not promised
	assert.Contains(t, []string{"A: 1B: 2", "B: 2A: 1"}, m.Header)
}

func TestBuffer_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		build func(buf *message.Buffer) *message.Buffer
		err   error
	}{
		{
			name:  "nul in field name",
			build: func(buf *message.Buffer) *message.Buffer { return buf.AddHeader("bad\x00name", "v") },
			err:   field.ErrNulByte,
		},
		{
			name:  "nul in field body",
			build: func(buf *message.Buffer) *message.Buffer { return buf.AddHeader("K", "bad\x00value") },
			err:   field.ErrNulByte,
		},
		{
			name:  "nul in message body",
			build: func(buf *message.Buffer) *message.Buffer { return buf.SetBody("bad\x00body") },
			err:   field.ErrNulByte,
		},
		{
			name:  "sentinel in field body",
			build: func(buf *message.Buffer) *message.Buffer { return buf.AddHeader("K", "bad\x02value") },
			err:   field.ErrSentinel,
		},
		{
			name:  "sentinel in message body",
			build: func(buf *message.Buffer) *message.Buffer { return buf.SetBody("bad\x04body") },
			err:   field.ErrSentinel,
		},
		{
			name:  "unrepresentable field body",
			build: func(buf *message.Buffer) *message.Buffer { return buf.AddHeader("Subject", "日本語") },
			err:   field.ErrCharset,
		},
		{
			name:  "unrepresentable message body",
			build: func(buf *message.Buffer) *message.Buffer { return buf.SetBody("🎉") },
			err:   field.ErrCharset,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			m, err := test.build(&message.Buffer{}).Message()
			assert.Nil(t, m)
			assert.ErrorIs(t, err, test.err)
		})
	}
}

func TestBuffer_Latin1(t *testing.T) {
	t.Parallel()

	buf := &message.Buffer{}
	m, err := buf.
		AddHeader("Subject", "café").
		SetBody("crème brûlée").
		Message()
	require.NoError(t, err)

	assert.Equal(t, "Subject: café", m.Header)
	assert.Equal(t, "crème brûlée", m.Body)
}
