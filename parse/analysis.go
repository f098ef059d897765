package parse

import "github.com/medwire/inspector"

// Per-format analysis shapes. Each is a plain mapping from field name to
// primitive, array or nested object once serialized; consumers treat every
// field as optional.

// HL7v2Analysis is the structural analysis of an HL7 v2 message.
type HL7v2Analysis struct {
	// MessageType is "<code> - <description>", with "Unknown" for codes
	// outside the standard table.
	MessageType string `json:"messageType"`

	// Segments summarizes each segment with its non-empty fields.
	Segments []SegmentSummary `json:"segments"`

	// SegmentCount is the number of non-blank lines parsed.
	SegmentCount int `json:"segmentCount"`

	// Version is MSH-12, or "" when the message has no MSH segment.
	Version string `json:"version"`
}

// SegmentSummary is one segment reduced for display.
type SegmentSummary struct {
	// Name is "<code> - <label>".
	Name string `json:"name"`

	// Fields holds the non-empty fields, capped for display.
	Fields []inspector.Field `json:"fields"`
}

// ASTMAnalysis is the structural analysis of an ASTM message.
type ASTMAnalysis struct {
	// RecordTypes lists the distinct record type codes in encounter order.
	RecordTypes []string `json:"recordTypes"`

	// RecordCount is the number of lines that matched the record pattern.
	RecordCount int `json:"recordCount"`

	// Records summarizes each record with its non-empty fields.
	Records []RecordSummary `json:"records"`
}

// RecordSummary is one ASTM record reduced for display.
type RecordSummary struct {
	// Name is "<code> - <label>".
	Name string `json:"name"`

	// Fields holds the non-empty fields, capped for display.
	Fields []inspector.Field `json:"fields"`
}

// CDAAnalysis is the structural analysis of an HL7 v3 (CDA) document.
type CDAAnalysis struct {
	// DocumentType is the root element's tag name.
	DocumentType string `json:"documentType"`

	// TemplateID is the document templateId, from the root or its direct
	// children.
	TemplateID string `json:"templateId"`

	// Code is the document type code, from the root or its direct
	// children.
	Code string `json:"code"`

	// Structure is the shallow listing of the root's direct children.
	Structure []ElementSummary `json:"structure"`

	// DetailedStructure is the full recursive object tree.
	DetailedStructure map[string]any `json:"detailedStructure"`

	// ElementCount is the number of elements below the root.
	ElementCount int `json:"elementCount"`
}

// ElementSummary is one XML child element reduced for display.
type ElementSummary struct {
	// Name is the element's tag name.
	Name string `json:"name"`

	// Attributes holds each attribute rendered as `name="value"`.
	Attributes []string `json:"attributes"`

	// HasChildren reports whether the element has child elements.
	HasChildren bool `json:"hasChildren"`

	// TextContent is the element's text, truncated to 100 characters.
	TextContent string `json:"textContent"`
}

// FHIRAnalysis is the structural analysis of a FHIR resource.
type FHIRAnalysis struct {
	// ResourceType is the resource's resourceType, its name, or "Unknown".
	ResourceType string `json:"resourceType"`

	// Description is the standard description of the resource type, or
	// "Unknown resource type".
	Description string `json:"description"`

	// Structure summarizes the top-level fields, resourceType excluded.
	Structure []FieldSummary `json:"structure"`

	// DetailedStructure is the full parsed object.
	DetailedStructure any `json:"detailedStructure"`

	// FieldCount is the number of top-level fields.
	FieldCount int `json:"fieldCount"`
}

// FieldSummary is one top-level field reduced for display.
type FieldSummary struct {
	// Name is the field name.
	Name string `json:"name"`

	// Type is the coarse value type ("string", "number", "array", ...).
	Type string `json:"type"`

	// Value is the summarized value: arrays as "Array(n)", objects as
	// "Object with k properties", long strings truncated to 50 chars.
	Value string `json:"value"`
}

// JSONAnalysis is the structural analysis of a generic JSON document.
type JSONAnalysis struct {
	// Type is "Array" or "Object".
	Type string `json:"type"`

	// Structure summarizes the top-level entries.
	Structure []FieldSummary `json:"structure"`

	// DetailedStructure is the full parsed value.
	DetailedStructure any `json:"detailedStructure"`

	// Size is the input length in bytes.
	Size int `json:"size"`

	// Depth is the maximum nesting depth, capped by the depth probe.
	Depth int `json:"depth"`
}

// XMLAnalysis is the structural analysis of a generic XML document.
type XMLAnalysis struct {
	// RootElement is the root tag name.
	RootElement string `json:"rootElement"`

	// Structure is the shallow listing of the root's direct children.
	Structure []ElementSummary `json:"structure"`

	// DetailedStructure is the full recursive object tree.
	DetailedStructure map[string]any `json:"detailedStructure"`

	// ElementCount is the number of elements below the root.
	ElementCount int `json:"elementCount"`

	// Namespaces holds the xmlns declarations on the root element.
	Namespaces []string `json:"namespaces"`
}
