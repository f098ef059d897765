// Package xmlmap builds a lightweight XML element tree and converts it to a
// generic nested-object representation for structural analysis.
//
// The tree is deliberately minimal: element local names, attributes as
// written, directly-contained character data, and child elements. It is not
// a general-purpose DOM; it exists so the CDA, FHIR-XML and generic-XML
// parsers can share one object mapping and one pretty-printer.
package xmlmap

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Attr is one attribute, with its name reconstructed as written in the
// source ("id", "xmlns", "xmlns:sdtc").
type Attr struct {
	Name  string
	Value string
}

// Element is one XML element.
type Element struct {
	// Name is the element's local name (namespace prefixes stripped).
	Name string

	// Attrs holds the attributes in source order.
	Attrs []Attr

	// Text is the trimmed character data directly inside the element.
	Text string

	// Children holds the child elements in source order.
	Children []*Element
}

// Parse decodes data into an element tree. It fails on any syntax error,
// on input without a root element, and on any content outside the root,
// whether extra elements or non-whitespace text.
func Parse(data []byte) (*Element, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var root *Element
	var stack []*Element

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("Invalid XML format: %v", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Name: t.Name.Local, Attrs: convertAttrs(t.Attr)}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("Invalid XML format: multiple root elements")
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			// The decoder guarantees matching here; a mismatch surfaces
			// as a syntax error from Token above.
			stack = stack[:len(stack)-1]
		case xml.CharData:
			text := strings.TrimSpace(string(t))
			if text == "" {
				break
			}
			if len(stack) == 0 {
				return nil, fmt.Errorf("Invalid XML format: content outside root element")
			}
			cur := stack[len(stack)-1]
			cur.Text += text
		}
	}

	if root == nil {
		return nil, fmt.Errorf("Invalid XML format: no root element")
	}
	return root, nil
}

// convertAttrs reconstructs attribute names the way they were written.
// encoding/xml reports xmlns="..." as {"", "xmlns"} and xmlns:p="..." as
// {"xmlns", "p"}.
func convertAttrs(attrs []xml.Attr) []Attr {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]Attr, 0, len(attrs))
	for _, a := range attrs {
		name := a.Name.Local
		if a.Name.Space != "" {
			name = a.Name.Space + ":" + a.Name.Local
		}
		out = append(out, Attr{Name: name, Value: a.Value})
	}
	return out
}

// Attr returns the value of the named attribute and whether it was present.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Child returns the first direct child with the given local name.
func (e *Element) Child(name string) *Element {
	for _, c := range e.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// TextContent returns all character data in the element and its
// descendants, in document order.
func (e *Element) TextContent() string {
	var sb strings.Builder
	e.appendText(&sb)
	return sb.String()
}

func (e *Element) appendText(sb *strings.Builder) {
	sb.WriteString(e.Text)
	for _, c := range e.Children {
		c.appendText(sb)
	}
}

// DescendantCount returns the number of elements below this one, the
// element itself excluded.
func (e *Element) DescendantCount() int {
	n := 0
	for _, c := range e.Children {
		n += 1 + c.DescendantCount()
	}
	return n
}

// Namespaces returns every xmlns declaration on the element, each rendered
// as it was written (`xmlns="..."`, `xmlns:sdtc="..."`).
func (e *Element) Namespaces() []string {
	var out []string
	for _, a := range e.Attrs {
		if a.Name == "xmlns" || strings.HasPrefix(a.Name, "xmlns:") {
			out = append(out, fmt.Sprintf("%s=%q", a.Name, a.Value))
		}
	}
	return out
}

// Namespace returns the default xmlns declaration on the element, or "".
func (e *Element) Namespace() string {
	v, _ := e.Attr("xmlns")
	return v
}

// ToObject converts the element to a generic nested object:
//
//   - attributes go under "@attributes" as a flat string map
//   - an element holding only text maps to {"#text": text}
//   - child elements are keyed by tag name; a tag that occurs once maps to
//     a bare object, a tag that recurs maps to an array of objects
//
// The once-vs-many decision is made from the complete child list, so the
// value shape for a key depends only on the element's final cardinality.
func ToObject(e *Element) map[string]any {
	obj := make(map[string]any)

	if len(e.Attrs) > 0 {
		attrs := make(map[string]string, len(e.Attrs))
		for _, a := range e.Attrs {
			attrs[a.Name] = a.Value
		}
		obj["@attributes"] = attrs
	}

	if len(e.Children) == 0 {
		if e.Text != "" {
			obj["#text"] = e.Text
		}
		return obj
	}

	// Group children by tag name, preserving first-occurrence order via
	// the map semantics of the consumer (order only matters for arrays).
	counts := make(map[string]int, len(e.Children))
	for _, c := range e.Children {
		counts[c.Name]++
	}
	for _, c := range e.Children {
		child := ToObject(c)
		if counts[c.Name] == 1 {
			obj[c.Name] = child
			continue
		}
		if existing, ok := obj[c.Name]; ok {
			obj[c.Name] = append(existing.([]any), child)
		} else {
			obj[c.Name] = []any{child}
		}
	}

	return obj
}

// PrettyPrint re-serializes the document with a newline between adjacent
// tags. If the input does not parse, it is returned unchanged.
func PrettyPrint(data []byte) string {
	root, err := Parse(data)
	if err != nil {
		return string(data)
	}

	var sb strings.Builder
	writeElement(&sb, root)
	return strings.ReplaceAll(sb.String(), "><", ">\n<")
}

// writeElement serializes the element compactly; PrettyPrint reflows it.
func writeElement(sb *strings.Builder, e *Element) {
	sb.WriteByte('<')
	sb.WriteString(e.Name)
	for _, a := range e.Attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.Name)
		sb.WriteString(`="`)
		sb.WriteString(escapeXML(a.Value))
		sb.WriteByte('"')
	}
	if len(e.Children) == 0 && e.Text == "" {
		sb.WriteString("/>")
		return
	}
	sb.WriteByte('>')
	sb.WriteString(escapeXML(e.Text))
	for _, c := range e.Children {
		writeElement(sb, c)
	}
	sb.WriteString("</")
	sb.WriteString(e.Name)
	sb.WriteByte('>')
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
