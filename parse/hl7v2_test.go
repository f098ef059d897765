package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medwire/inspector"
)

const sampleORU = "MSH|^~\\&|SENDER|FACILITY|RECEIVER|FACILITY|20240101120000||ORU^R01|MSG00001|P|2.5\r" +
	"PID|1||12345^^^MRN||DOE^JOHN||19800101|M\r" +
	"OBX|1|NM|GLU^Glucose||95|mg/dL|70-100|N|||F"

func TestParseHL7v2(t *testing.T) {
	p := New()

	result, err := p.Parse(sampleORU, inspector.HL7v2)
	require.NoError(t, err)

	assert.Equal(t, inspector.HL7v2, result.Format)
	assert.Equal(t, "2.5", result.Version)

	analysis, ok := result.Analysis.(HL7v2Analysis)
	require.True(t, ok)
	assert.Equal(t, "ORU - Unsolicited transmission of an observation message", analysis.MessageType)
	assert.Equal(t, 3, analysis.SegmentCount)
	assert.Equal(t, "2.5", analysis.Version)
	require.Len(t, analysis.Segments, 3)
	assert.Equal(t, "MSH - Message Header", analysis.Segments[0].Name)
	assert.Equal(t, "PID - Patient Identification", analysis.Segments[1].Name)
	assert.Equal(t, "OBX - Observation/Result", analysis.Segments[2].Name)

	// The normalized form is the original segments, one per line.
	assert.Equal(t,
		"MSH|^~\\&|SENDER|FACILITY|RECEIVER|FACILITY|20240101120000||ORU^R01|MSG00001|P|2.5\n"+
			"PID|1||12345^^^MRN||DOE^JOHN||19800101|M\n"+
			"OBX|1|NM|GLU^Glucose||95|mg/dL|70-100|N|||F",
		result.Formatted)
}

func TestParseHL7v2_FieldNames(t *testing.T) {
	p := New()

	result, err := p.Parse(sampleORU, inspector.HL7v2)
	require.NoError(t, err)
	analysis := result.Analysis.(HL7v2Analysis)

	// MSH-1 is the separator itself, so position 1 after splitting is the
	// encoding characters labeled with the table's first entry.
	msh := analysis.Segments[0].Fields
	require.NotEmpty(t, msh)
	assert.Equal(t, "Field Separator", msh[0].Name)
	assert.Equal(t, `^~\&`, msh[0].Value)
	assert.Equal(t, 1, msh[0].Position)

	// Empty fields are dropped from the summary.
	pid := analysis.Segments[1].Fields
	for _, f := range pid {
		assert.NotEmpty(t, f.Value, "field %s should not be empty", f.Name)
	}

	var patientName inspector.Field
	for _, f := range pid {
		if f.Position == 5 {
			patientName = f
		}
	}
	assert.Equal(t, "Patient Name", patientName.Name)
	assert.Equal(t, "DOE^JOHN", patientName.Value)
}

func TestParseHL7v2_UnknownSegment(t *testing.T) {
	p := New()

	result, err := p.Parse("ZZZ|custom|data", inspector.HL7v2)
	require.NoError(t, err)
	analysis := result.Analysis.(HL7v2Analysis)

	require.Len(t, analysis.Segments, 1)
	// Unknown codes keep the code as the name and number their fields.
	assert.Equal(t, "ZZZ - ZZZ", analysis.Segments[0].Name)
	require.Len(t, analysis.Segments[0].Fields, 2)
	assert.Equal(t, "ZZZ.1", analysis.Segments[0].Fields[0].Name)
	assert.Equal(t, "custom", analysis.Segments[0].Fields[0].Value)
}

func TestParseHL7v2_UnknownMessageType(t *testing.T) {
	p := New()

	result, err := p.Parse("MSH|^~\\&|A|B|C|D|20240101||QQQ^Z99|X|P|2.3", inspector.HL7v2)
	require.NoError(t, err)
	analysis := result.Analysis.(HL7v2Analysis)

	assert.Equal(t, "QQQ - Unknown", analysis.MessageType)
	assert.Equal(t, "2.3", analysis.Version)
}

func TestParseHL7v2_NeverFails(t *testing.T) {
	p := New()

	for _, text := range []string{"", "not a segment at all", "AB"} {
		result, err := p.Parse(text, inspector.HL7v2)
		require.NoError(t, err, "input %q", text)
		require.NotNil(t, result)
	}
}

func TestParseHL7v2_FieldCap(t *testing.T) {
	p := New(inspector.WithMaxFieldsPerRecord(3))

	result, err := p.Parse(sampleORU, inspector.HL7v2)
	require.NoError(t, err)
	analysis := result.Analysis.(HL7v2Analysis)

	for _, seg := range analysis.Segments {
		assert.LessOrEqual(t, len(seg.Fields), 3)
	}
}
