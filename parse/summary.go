package parse

import (
	"fmt"

	"github.com/medwire/inspector/xmlmap"
)

// maxSummaryStringLen is where string values are cut in field summaries.
const maxSummaryStringLen = 50

// maxElementTextLen is where element text is cut in shallow XML listings.
const maxElementTextLen = 100

// summarizeValue renders a parsed JSON value for a one-line summary.
func summarizeValue(v any) string {
	switch val := v.(type) {
	case []any:
		return fmt.Sprintf("Array(%d)", len(val))
	case map[string]any:
		return fmt.Sprintf("Object with %d properties", len(val))
	case string:
		if len(val) > maxSummaryStringLen {
			return val[:maxSummaryStringLen] + "..."
		}
		return val
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%v", val)
	}
}

// valueType names the coarse type of a parsed JSON value.
func valueType(v any) string {
	switch v.(type) {
	case []any:
		return "array"
	case map[string]any:
		return "object"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// elementSummaries builds the shallow child listing shared by the CDA and
// generic XML analyses.
func elementSummaries(root *xmlmap.Element, limit int) []ElementSummary {
	children := root.Children
	if len(children) > limit {
		children = children[:limit]
	}

	out := make([]ElementSummary, 0, len(children))
	for _, c := range children {
		attrs := make([]string, 0, len(c.Attrs))
		for _, a := range c.Attrs {
			attrs = append(attrs, fmt.Sprintf("%s=%q", a.Name, a.Value))
		}

		text := c.TextContent()
		if len(text) > maxElementTextLen {
			text = text[:maxElementTextLen]
		}

		out = append(out, ElementSummary{
			Name:        c.Name,
			Attributes:  attrs,
			HasChildren: len(c.Children) > 0,
			TextContent: text,
		})
	}
	return out
}
