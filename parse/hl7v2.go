package parse

import (
	"fmt"
	"strings"

	"github.com/medwire/inspector"
)

// parseHL7v2 parses a pipe-delimited HL7 v2.x message. Parsing is
// best-effort and never fails: every non-blank line becomes a segment,
// recognized or not.
func (p *Parser) parseHL7v2(text string) (*inspector.ParseResult, error) {
	lines := splitLines(text)

	segments := make([]inspector.Segment, 0, len(lines))
	var messageType, version string

	for _, line := range lines {
		segType := line
		if len(segType) > 3 {
			segType = segType[:3]
		}
		fields := strings.Split(line, "|")

		// MSH-1 is the field separator itself, so after splitting on "|"
		// the message type sits at index 8 and the version at index 11.
		if segType == "MSH" {
			if len(fields) > 8 {
				messageType = strings.SplitN(fields[8], "^", 2)[0]
			}
			if len(fields) > 11 {
				version = fields[11]
			}
		}

		name, ok := hl7SegmentNames[segType]
		if !ok {
			name = segType
		}

		segments = append(segments, inspector.Segment{
			Type:   segType,
			Name:   name,
			Fields: hl7Fields(fields, segType),
			Raw:    line,
		})
	}

	summaries := make([]SegmentSummary, 0, len(segments))
	for _, seg := range segments {
		summaries = append(summaries, SegmentSummary{
			Name:   fmt.Sprintf("%s - %s", seg.Type, seg.Name),
			Fields: nonEmptyFields(seg.Fields, p.opts.MaxFieldsPerRecord),
		})
	}

	typeLabel, ok := hl7MessageTypes[messageType]
	if !ok {
		typeLabel = "Unknown"
	}

	return &inspector.ParseResult{
		Format:    inspector.HL7v2,
		Version:   version,
		Formatted: joinRawSegments(segments),
		Analysis: HL7v2Analysis{
			MessageType:  fmt.Sprintf("%s - %s", messageType, typeLabel),
			Segments:     summaries,
			SegmentCount: len(segments),
			Version:      version,
		},
	}, nil
}

// hl7Fields labels the pipe-delimited fields of one segment. Position 1 is
// the first field after the segment code; unmapped positions fall back to
// "<code>.<position>".
func hl7Fields(fields []string, segType string) []inspector.Field {
	names := hl7FieldNames[segType]

	out := make([]inspector.Field, 0, len(fields)-1)
	for i := 1; i < len(fields); i++ {
		name := fmt.Sprintf("%s.%d", segType, i)
		if i-1 < len(names) {
			name = names[i-1]
		}
		out = append(out, inspector.Field{Name: name, Value: fields[i], Position: i})
	}
	return out
}

// joinRawSegments rejoins the original lines; the formatted rendering of
// HL7 v2 is a normalization pass, not a reflow.
func joinRawSegments(segments []inspector.Segment) string {
	raws := make([]string, len(segments))
	for i, seg := range segments {
		raws[i] = seg.Raw
	}
	return strings.Join(raws, "\n")
}

// nonEmptyFields keeps the fields that carry a value, up to limit.
func nonEmptyFields(fields []inspector.Field, limit int) []inspector.Field {
	out := make([]inspector.Field, 0, limit)
	for _, f := range fields {
		if f.Value == "" {
			continue
		}
		out = append(out, f)
		if len(out) == limit {
			break
		}
	}
	return out
}
