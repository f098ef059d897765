package parse

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medwire/inspector"
)

func TestParser_UnsupportedFormat(t *testing.T) {
	p := New()

	_, err := p.Parse("whatever", inspector.Format("edi"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, inspector.ErrUnsupportedFormat))

	var pe *inspector.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, inspector.Format("edi"), pe.Format)
}

func TestParser_ErrorShape(t *testing.T) {
	p := New()

	_, err := p.Parse("<a><b></a>", inspector.XML)
	require.Error(t, err)

	// Every failure surfaces as the one dispatcher error shape.
	assert.Contains(t, err.Error(), "Failed to parse xml message")
	assert.Contains(t, err.Error(), "Invalid XML format")
	assert.True(t, errors.Is(err, inspector.ErrMalformedInput))
}

func TestParser_SizeLimit(t *testing.T) {
	p := New(inspector.WithMaxInputSize(64))

	big := `{"data": "` + string(make([]byte, 128)) + `"}`

	for _, format := range []inspector.Format{inspector.JSON, inspector.XML} {
		_, err := p.Parse(big, format)
		require.Error(t, err, "format %s", format)
		assert.True(t, errors.Is(err, inspector.ErrSizeLimit))
		assert.Contains(t, err.Error(), "too large")
	}
}

func TestParser_RecordsMetrics(t *testing.T) {
	p := New()

	_, err := p.Parse(`{"a": 1}`, inspector.JSON)
	require.NoError(t, err)
	_, err = p.Parse(`{broken`, inspector.JSON)
	require.Error(t, err)

	m := p.Metrics()
	assert.Equal(t, uint64(2), m.ParsesTotal())
	assert.Equal(t, uint64(1), m.ParsesFailed())

	stats, ok := m.FormatStats(inspector.JSON)
	require.True(t, ok)
	assert.Equal(t, uint64(2), stats.Parses)
	assert.Equal(t, uint64(1), stats.Failures)
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"lf", "a\nb\nc", []string{"a", "b", "c"}},
		{"cr only", "a\rb\rc", []string{"a", "b", "c"}},
		{"crlf", "a\r\nb\r\nc", []string{"a", "b", "c"}},
		{"mixed", "a\r\nb\rc\nd", []string{"a", "b", "c", "d"}},
		{"blank lines dropped", "a\n\n  \t\nb", []string{"a", "b"}},
		{"empty input", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitLines(tt.text))
		})
	}
}
