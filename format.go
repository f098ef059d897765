package inspector

// Format identifies a supported healthcare interchange format.
type Format string

// Supported formats.
const (
	// HL7v2 is pipe-and-caret-delimited HL7 version 2.x messaging.
	HL7v2 Format = "hl7v2"
	// HL7v3 is XML-based HL7 version 3 (CDA documents).
	HL7v3 Format = "hl7v3"
	// FHIR is a FHIR resource, in JSON or XML representation.
	FHIR Format = "fhir"
	// ASTM is record-oriented lab-instrument messaging (E1381/E1394/E1238).
	ASTM Format = "astm"
	// JSON is a generic JSON document.
	JSON Format = "json"
	// XML is a generic XML document.
	XML Format = "xml"
)

// String returns the format tag.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if this is a supported format tag.
func (f Format) IsValid() bool {
	switch f {
	case HL7v2, HL7v3, FHIR, ASTM, JSON, XML:
		return true
	default:
		return false
	}
}

// Formats returns all supported formats in detection priority order.
// Detection tries each family in this order and the first match wins;
// generic JSON and XML come last so the healthcare formats that embed
// them are claimed first.
func Formats() []Format {
	return []Format{HL7v2, HL7v3, FHIR, ASTM, JSON, XML}
}
