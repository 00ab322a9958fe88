package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Formats(t *testing.T) {
	tests := []struct {
		format  string
		wantSub string
	}{
		{format: FormatJSON, wantSub: `"msg":"hello"`},
		{format: "", wantSub: `"msg":"hello"`},
		{format: FormatText, wantSub: "msg=hello"},
		{format: "TEXT", wantSub: "msg=hello"},
		{format: FormatZap, wantSub: `"msg":"hello"`},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			log, err := New(tt.format, "info", &buf)
			require.NoError(t, err)

			log.Info(context.Background(), "hello", "k", "v")
			assert.Contains(t, buf.String(), tt.wantSub)
		})
	}
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := New("xml", "info", &bytes.Buffer{})
	require.Error(t, err)
}

func TestNew_Levels(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(FormatText, "error", &buf)
	require.NoError(t, err)

	log.Warn(context.Background(), "quiet")
	log.Error(context.Background(), "loud")

	out := buf.String()
	assert.False(t, strings.Contains(out, "quiet"))
	assert.True(t, strings.Contains(out, "loud"))

	_, err = New(FormatText, "verbose", &buf)
	require.Error(t, err)
}
