package xmlmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	root, err := Parse([]byte(`<doc id="d1" xmlns="urn:x" xmlns:ext="urn:y"><head>Title</head><body><p>one</p><p>two</p></body></doc>`))
	require.NoError(t, err)

	assert.Equal(t, "doc", root.Name)
	v, ok := root.Attr("id")
	assert.True(t, ok)
	assert.Equal(t, "d1", v)

	head := root.Child("head")
	require.NotNil(t, head)
	assert.Equal(t, "Title", head.Text)

	assert.Equal(t, 4, root.DescendantCount())
	assert.Equal(t, "urn:x", root.Namespace())
	assert.Equal(t, []string{`xmlns="urn:x"`, `xmlns:ext="urn:y"`}, root.Namespaces())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"mismatched tags", "<a><b></a>"},
		{"no root", "plain text"},
		{"empty input", ""},
		{"multiple roots", "<a/><b/>"},
		{"unclosed root", "<a><b/>"},
		{"text before root", "junk <a/>"},
		{"text after root", "<a/> trailing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "Invalid XML format")
		})
	}
}

func TestParse_PrefixedNamesFlattened(t *testing.T) {
	root, err := Parse([]byte(`<ext:doc xmlns:ext="urn:y"><ext:item/></ext:doc>`))
	require.NoError(t, err)

	// Element names are local names; prefixes survive only on attributes.
	assert.Equal(t, "doc", root.Name)
	require.Len(t, root.Children, 1)
	assert.Equal(t, "item", root.Children[0].Name)
}

func TestToObject(t *testing.T) {
	root, err := Parse([]byte(`<obs code="8480-6"><value unit="mmHg">120</value><note>a</note><note>b</note></obs>`))
	require.NoError(t, err)

	obj := ToObject(root)

	attrs, ok := obj["@attributes"].(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "8480-6", attrs["code"])

	// A tag that occurs once maps to a bare object.
	value, ok := obj["value"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "120", value["#text"])

	// A tag that recurs maps to an array, decided from the full child list.
	notes, ok := obj["note"].([]any)
	require.True(t, ok)
	require.Len(t, notes, 2)
	assert.Equal(t, "a", notes[0].(map[string]any)["#text"])
	assert.Equal(t, "b", notes[1].(map[string]any)["#text"])
}

func TestToObject_EmptyElement(t *testing.T) {
	root, err := Parse([]byte(`<root><empty/></root>`))
	require.NoError(t, err)

	obj := ToObject(root)
	empty, ok := obj["empty"].(map[string]any)
	require.True(t, ok)
	assert.Empty(t, empty)
}

func TestTextContent(t *testing.T) {
	root, err := Parse([]byte(`<section><title>Vitals</title><entry><value>120</value></entry></section>`))
	require.NoError(t, err)

	assert.Equal(t, "Vitals120", root.TextContent())
}

func TestPrettyPrint(t *testing.T) {
	got := PrettyPrint([]byte(`<root attr="a&amp;b"><child>text</child><leaf/></root>`))
	assert.Equal(t, "<root attr=\"a&amp;b\">\n<child>text</child>\n<leaf/>\n</root>", got)

	// Unparseable input comes back unchanged.
	assert.Equal(t, "<broken", PrettyPrint([]byte("<broken")))
}
