package inspector

// DetectionResult is the outcome of format detection for one input.
// A nil *DetectionResult from the detector means no format could be
// determined; that is not an error.
type DetectionResult struct {
	// Format is the best-guess format family.
	Format Format `json:"format"`

	// Version is the detected version label ("v2.5", "CDA R2", "FHIR R4",
	// "E1394", ...). Empty when no version pattern matched.
	Version string `json:"version,omitempty"`

	// Confidence is a heuristic score in [0,1]. It is not a calibrated
	// probability; it only orders how strongly the input resembles the
	// guessed format.
	Confidence float64 `json:"confidence"`
}

// ParseResult is the outcome of parsing one message.
type ParseResult struct {
	// Format is the format the message was parsed as.
	Format Format `json:"format"`

	// Version is the version reported by the message itself (MSH-12 for
	// HL7 v2, fhirVersion for FHIR, the XML declaration for generic XML).
	// Empty when the message carries none.
	Version string `json:"version,omitempty"`

	// Formatted is the canonical pretty/normalized rendering of the input.
	Formatted string `json:"formatted"`

	// Analysis is the format-dependent structural analysis. Its concrete
	// type is one of the *Analysis structs in the parse package; it always
	// serializes as a plain mapping from field name to primitive, array or
	// nested object.
	Analysis any `json:"analysis"`
}

// Field is one positional field of an HL7 v2 segment or ASTM record.
type Field struct {
	// Name is the human label from the per-segment field-name table, or a
	// positional fallback ("PID.5", "R Field 3") when the table has no
	// entry.
	Name string `json:"name"`

	// Value is the raw field text, unmodified.
	Value string `json:"value"`

	// Position is the 1-based field position within the line.
	Position int `json:"position"`
}

// Segment is one line of an HL7 v2 message.
type Segment struct {
	// Type is the 3-letter segment code ("MSH", "PID", ...).
	Type string `json:"type"`

	// Name is the human label for the segment code, falling back to the
	// code itself for unknown segments.
	Name string `json:"name"`

	// Fields holds the pipe-delimited fields in source order.
	Fields []Field `json:"fields"`

	// Raw is the original line, unmodified. Joining all segments' Raw
	// with the record separator reproduces the normalized message.
	Raw string `json:"raw"`
}

// Record is one line of an ASTM message.
type Record struct {
	// Sequence is the record sequence number as written in the message.
	Sequence string `json:"sequence"`

	// Type is the one-letter record code ("H", "P", "O", "R", ...).
	Type string `json:"type"`

	// Name is the human label for the record code, falling back to the
	// code itself for unknown record types.
	Name string `json:"name"`

	// Fields holds the pipe-delimited fields in source order.
	Fields []Field `json:"fields"`

	// Raw is the original line, unmodified.
	Raw string `json:"raw"`
}
