package parse

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medwire/inspector"
)

func TestParseXML(t *testing.T) {
	p := New()

	text := `<?xml version="1.1"?><catalog xmlns="urn:example:books"><book id="1"><title>Go</title></book><book id="2"><title>XML</title></book></catalog>`
	result, err := p.Parse(text, inspector.XML)
	require.NoError(t, err)

	assert.Equal(t, inspector.XML, result.Format)
	assert.Equal(t, "1.1", result.Version)

	analysis, ok := result.Analysis.(XMLAnalysis)
	require.True(t, ok)
	assert.Equal(t, "catalog", analysis.RootElement)
	assert.Equal(t, 4, analysis.ElementCount)
	assert.Equal(t, []string{`xmlns="urn:example:books"`}, analysis.Namespaces)

	// Repeated children map to an array in the detailed structure.
	books, ok := analysis.DetailedStructure["book"].([]any)
	require.True(t, ok)
	assert.Len(t, books, 2)
}

func TestParseXML_NoDeclaration(t *testing.T) {
	p := New()

	result, err := p.Parse(`<root><a>1</a></root>`, inspector.XML)
	require.NoError(t, err)

	assert.Equal(t, "", result.Version)
	analysis := result.Analysis.(XMLAnalysis)
	assert.Equal(t, "root", analysis.RootElement)
	assert.Empty(t, analysis.Namespaces)
}

func TestParseXML_Invalid(t *testing.T) {
	p := New()

	for _, text := range []string{
		"<a><b></a>",
		"not xml at all",
		"<a/><b/>",
		"junk <a/>",
	} {
		_, err := p.Parse(text, inspector.XML)
		require.Error(t, err, "input %q", text)
		assert.True(t, errors.Is(err, inspector.ErrMalformedInput))
		assert.Contains(t, err.Error(), "Invalid XML format")
	}
}

func TestParseXML_PrettyPrinted(t *testing.T) {
	p := New()

	result, err := p.Parse(`<root><a>1</a><b/></root>`, inspector.XML)
	require.NoError(t, err)

	assert.Equal(t, "<root>\n<a>1</a>\n<b/>\n</root>", result.Formatted)
}
