package detect

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medwire/inspector"
)

const (
	sampleHL7v2 = "MSH|^~\\&|SENDER|FACILITY|RECEIVER|FACILITY|20240101120000||ORU^R01|MSG00001|P|2.5\r" +
		"PID|1||12345^^^MRN||DOE^JOHN||19800101|M\r" +
		"OBX|1|NM|GLU^Glucose||95|mg/dL|70-100|N|||F"

	sampleASTM = "1H|\\^&|||LabSys|||||||P|E 1394-97|20240101\n" +
		"2P|1||PATID123||DOE^JANE||19900215|F\n" +
		"3O|1|SPEC001||^^^GLU|R\n" +
		"4R|1|^^^GLU|98|mg/dL||N||F\n" +
		"5L|1|N"

	sampleCDA = `<?xml version="1.0"?>` +
		`<ClinicalDocument xmlns="urn:hl7-org:v3"><typeId root="2.16.840.1.113883.1.3" extension="POCD_HD000040"/></ClinicalDocument>`

	samplePatient = `{"resourceType": "Patient", "id": "example", "active": true}`
)

func TestDetector_Detect(t *testing.T) {
	d := New()

	tests := []struct {
		name       string
		text       string
		wantFormat inspector.Format
		minConf    float64
	}{
		{"hl7v2 message", sampleHL7v2, inspector.HL7v2, 0.8},
		{"astm message", sampleASTM, inspector.ASTM, 0.7},
		{"cda document", sampleCDA, inspector.HL7v3, 0.8},
		{"fhir patient json", samplePatient, inspector.FHIR, 0.8},
		{"generic json object", `{"hello": "world"}`, inspector.JSON, 0.5},
		{"generic json array", `[1, 2, 3]`, inspector.JSON, 0.5},
		{"xml with declaration", `<?xml version="1.0"?><root><a>1</a></root>`, inspector.XML, 0.5},
		{"bare xml element", `<root><a>1</a></root>`, inspector.XML, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := d.Detect(tt.text)
			require.NotNil(t, result, "expected a detection result")
			assert.Equal(t, tt.wantFormat, result.Format)
			assert.GreaterOrEqual(t, result.Confidence, tt.minConf)
			assert.LessOrEqual(t, result.Confidence, 1.0)
		})
	}
}

func TestDetector_DetectNoMatch(t *testing.T) {
	d := New()

	for _, text := range []string{
		"",
		"   \n\t  ",
		"just some plain prose with no structure at all",
	} {
		assert.Nil(t, d.Detect(text), "input %q should not match", text)
	}
}

func TestDetector_PriorityOverGenericFamilies(t *testing.T) {
	d := New()

	// A FHIR resource is valid JSON, but the fhir family must claim it
	// before the generic json family gets a chance.
	result := d.Detect(samplePatient)
	require.NotNil(t, result)
	assert.Equal(t, inspector.FHIR, result.Format)

	// A CDA document is valid XML, but hl7v3 outranks xml.
	result = d.Detect(sampleCDA)
	require.NotNil(t, result)
	assert.Equal(t, inspector.HL7v3, result.Format)
}

func TestDetector_JSONFallback(t *testing.T) {
	d := New()

	// The json family trigger claims any {-leading text first, so a bundle
	// without a top-level resourceType detects as plain JSON.
	bundle := `{"entry": [{"resource": {"id": "p1"}}], "total": 1}`
	result := d.Detect(bundle)
	require.NotNil(t, result)
	assert.Equal(t, inspector.JSON, result.Format)
	assert.InDelta(t, 0.8, result.Confidence, 0.001)

	// The structural probe itself recognizes the bundle shape.
	result = d.jsonFallback(bundle)
	require.NotNil(t, result)
	assert.Equal(t, inspector.FHIR, result.Format)
	assert.InDelta(t, 0.9, result.Confidence, 0.001)

	// A scalar is valid JSON but not a document.
	assert.Nil(t, d.detect(`42`))
}

func TestDetector_XMLFallbackNamespaces(t *testing.T) {
	d := New()

	// Family triggers want a fhir namespace on a known root; an unknown
	// root with a fhir namespace still lands on FHIR via the fallback.
	result := d.xmlFallback(`<Observation xmlns="http://hl7.org/fhir"><id value="o1"/></Observation>`)
	require.NotNil(t, result)
	assert.Equal(t, inspector.FHIR, result.Format)

	result = d.xmlFallback(`<document xmlns="urn:hl7-org:v3"/>`)
	require.NotNil(t, result)
	assert.Equal(t, inspector.HL7v3, result.Format)
}

func TestVersion(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		format inspector.Format
		want   string
	}{
		{"hl7v2 version from field", "MSH|...|2.5|", inspector.HL7v2, "v2.5"},
		{"cda r2", `<ClinicalDocument><title>CDA Release 2 sample</title></ClinicalDocument>`, inspector.HL7v3, "CDA R2"},
		{"cda from namespace", `<doc xmlns:cda="urn:hl7-org:v3/cda">`, inspector.HL7v3, "CDA"},
		{"fhir explicit version", `{"fhirVersion": "4.0.1"}`, inspector.FHIR, "4.0.1"},
		{"astm e1394", "1H|\\^&|||LabSys||||||P|E1394-97", inspector.ASTM, "E1394"},
		{"no version marker", "MSH|^~\\&|A|B", inspector.HL7v2, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Version(tt.text, tt.format))
		})
	}
}

func TestMessageType(t *testing.T) {
	assert.Equal(t, "ORU", MessageType(sampleHL7v2, inspector.HL7v2))
	assert.Equal(t, "Patient", MessageType(samplePatient, inspector.FHIR))
	assert.Equal(t, "", MessageType(sampleHL7v2, inspector.ASTM))
	assert.Equal(t, "", MessageType("no markers here", inspector.HL7v2))
}

func TestDetector_ConfidenceClamped(t *testing.T) {
	d := New()

	// Stacked markers must never push the score past 1.0.
	text := sampleHL7v2 + "\rPID|2\rOBX|2"
	result := d.Detect(text)
	require.NotNil(t, result)
	assert.LessOrEqual(t, result.Confidence, 1.0)
	assert.GreaterOrEqual(t, result.Confidence, 0.0)
}

func TestDetector_RecordsMetrics(t *testing.T) {
	d := New()

	d.Detect(sampleHL7v2)
	d.Detect("plain prose, nothing to match")

	m := d.Metrics()
	assert.Equal(t, uint64(2), m.DetectionsTotal())
	assert.Equal(t, uint64(1), m.DetectionsMatched())
}

func TestDetector_Cached(t *testing.T) {
	d := NewCached(10)

	first := d.Detect(samplePatient)
	second := d.Detect(samplePatient)
	require.NotNil(t, first)
	assert.Same(t, first, second, "repeat inputs should hit the memo")

	// Misses still classify and still count in the metrics.
	assert.Nil(t, d.Detect("plain prose"))
	assert.Equal(t, uint64(3), d.Metrics().DetectionsTotal())
	assert.Equal(t, uint64(2), d.Metrics().DetectionsMatched())
}

func TestDetector_LeadingWhitespaceTrimmed(t *testing.T) {
	d := New()

	result := d.Detect("\n\n  " + samplePatient + "\n")
	require.NotNil(t, result)
	assert.Equal(t, inspector.FHIR, result.Format)

	if !strings.HasPrefix(sampleHL7v2, "MSH|") {
		t.Fatal("sample must start with MSH|")
	}
	result = d.Detect("   " + sampleHL7v2)
	require.NotNil(t, result)
	assert.Equal(t, inspector.HL7v2, result.Format)
}
