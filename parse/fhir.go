package parse

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/buger/jsonparser"

	"github.com/medwire/inspector"
	"github.com/medwire/inspector/xmlmap"
)

// parseFHIR parses a FHIR resource in either representation: XML when the
// trimmed text starts with "<", JSON otherwise.
func (p *Parser) parseFHIR(text string) (*inspector.ParseResult, error) {
	data := []byte(text)

	var parsed any
	var formatted, version string

	if strings.HasPrefix(strings.TrimSpace(text), "<") {
		root, err := xmlmap.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", inspector.ErrMalformedInput, err)
		}
		parsed = xmlmap.ToObject(root)
		formatted = xmlmap.PrettyPrint(data)
	} else {
		if err := json.Unmarshal(data, &parsed); err != nil {
			return nil, fmt.Errorf("%w: Invalid JSON format: %v", inspector.ErrMalformedInput, err)
		}
		pretty, err := json.MarshalIndent(parsed, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("%w: %v", inspector.ErrMalformedInput, err)
		}
		formatted = string(pretty)
		version = fhirVersion(data)
	}

	resourceType := "Unknown"
	obj, _ := parsed.(map[string]any)
	if rt, ok := obj["resourceType"].(string); ok && rt != "" {
		resourceType = rt
	} else if name, ok := obj["name"].(string); ok && name != "" {
		resourceType = name
	}

	description, ok := fhirResourceDescriptions[resourceType]
	if !ok {
		description = "Unknown resource type"
	}

	return &inspector.ParseResult{
		Format:    inspector.FHIR,
		Version:   version,
		Formatted: formatted,
		Analysis: FHIRAnalysis{
			ResourceType:      resourceType,
			Description:       description,
			Structure:         p.fhirStructure(obj),
			DetailedStructure: parsed,
			FieldCount:        topLevelCount(parsed),
		},
	}, nil
}

// fhirStructure summarizes the resource's top-level fields, resourceType
// excluded. Keys are sorted so the listing is deterministic.
func (p *Parser) fhirStructure(obj map[string]any) []FieldSummary {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		if k == "resourceType" {
			continue
		}
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
			Type:  valueType(obj[k]),
			Value: summarizeValue(obj[k]),
		})
	}
	return out
}

// topLevelCount is the number of top-level fields (or array elements).
func topLevelCount(v any) int {
	switch val := v.(type) {
	case map[string]any:
		return len(val)
	case []any:
		return len(val)
	default:
		return 0
	}
}

// fhirVersion maps a fhirVersion field to its release label: 4.0.x is R4,
// 4.3.x is R4B, 5.0.x is R5, anything else is reported verbatim.
func fhirVersion(data []byte) string {
	raw, err := jsonparser.GetString(data, "fhirVersion")
	if err != nil || raw == "" {
		return ""
	}
	switch {
	case strings.HasPrefix(raw, "4.0"):
		return "R4"
	case strings.HasPrefix(raw, "4.3"):
		return "R4B"
	case strings.HasPrefix(raw, "5.0"):
		return "R5"
	default:
		return raw
	}
}
