package parse

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/medwire/inspector"
)

// parseJSON parses a generic JSON document. Inputs over the configured
// byte ceiling are rejected before parsing.
func (p *Parser) parseJSON(text string) (*inspector.ParseResult, error) {
	if err := p.checkSize(text); err != nil {
		return nil, err
	}

	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, fmt.Errorf("%w: Invalid JSON format: %v", inspector.ErrMalformedInput, err)
	}

	pretty, err := json.MarshalIndent(parsed, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", inspector.ErrMalformedInput, err)
	}

	docType := "Object"
	if _, ok := parsed.([]any); ok {
		docType = "Array"
	}

	return &inspector.ParseResult{
		Format:    inspector.JSON,
		Formatted: string(pretty),
		Analysis: JSONAnalysis{
			Type:              docType,
			Structure:         p.jsonStructure(parsed),
			DetailedStructure: parsed,
			Size:              len(text),
			Depth:             p.Depth(parsed),
		},
	}, nil
}

// jsonStructure summarizes the document's top level. Objects list their
// entries (sorted, capped); arrays report their length and the type of the
// first element.
func (p *Parser) jsonStructure(parsed any) []FieldSummary {
	switch val := parsed.(type) {
	case []any:
		out := []FieldSummary{{
			Name:  "Array",
			Type:  "array",
			Value: fmt.Sprintf("%d items", len(val)),
		}}
		if len(val) > 0 {
			out = append(out, FieldSummary{
				Name:  "First Item Type",
				Type:  valueType(val[0]),
				Value: valueType(val[0]),
			})
		}
		return out

	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		if len(keys) > p.opts.MaxStructureEntries {
			keys = keys[:p.opts.MaxStructureEntries]
		}

		out := make([]FieldSummary, 0, len(keys))
		for _, k := range keys {
			out = append(out, FieldSummary{
				Name:  k,
				Type:  valueType(val[k]),
				Value: summarizeValue(val[k]),
			})
		}
		return out

	default:
		return nil
	}
}

// Depth reports the maximum nesting depth of a parsed JSON value. The
// probe stops at the configured cap and reports the cap value instead of
// recursing further, so pathological nesting cannot blow the stack.
func (p *Parser) Depth(v any) int {
	return p.depth(v, 0)
}

func (p *Parser) depth(v any, current int) int {
	if current >= p.opts.MaxProbeDepth {
		return p.opts.MaxProbeDepth
	}

	deepest := current
	switch val := v.(type) {
	case []any:
		for _, item := range val {
			if d := p.depth(item, current+1); d > deepest {
				deepest = d
			}
		}
	case map[string]any:
		for _, item := range val {
			if d := p.depth(item, current+1); d > deepest {
				deepest = d
			}
		}
	}
	return deepest
}
