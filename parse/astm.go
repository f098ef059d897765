package parse

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/medwire/inspector"
)

// astmRecordRe matches one ASTM record after control-byte stripping:
// sequence number, one-letter record type, then the pipe-delimited body.
var astmRecordRe = regexp.MustCompile(`^(\d+)([A-Z])\|(.*)`)

// astmControlStripper removes the framing control bytes (STX, ETX, EOT,
// ENQ, ACK, NAK, ETB) a lab instrument wraps around each frame.
var astmControlStripper = strings.NewReplacer(
	"\x02", "", "\x03", "", "\x04", "", "\x05", "", "\x06", "", "\x15", "", "\x17", "",
)

// parseASTM parses an ASTM E138x message. Lines that do not match the
// record pattern are silently dropped from both the normalized form and
// the record list; parsing itself never fails.
func (p *Parser) parseASTM(text string) (*inspector.ParseResult, error) {
	var records []inspector.Record

	for _, line := range splitLines(text) {
		cleaned := astmControlStripper.Replace(line)
		m := astmRecordRe.FindStringSubmatch(cleaned)
		if m == nil {
			continue
		}

		recType := m[2]
		name, ok := astmRecordNames[recType]
		if !ok {
			name = recType
		}

		records = append(records, inspector.Record{
			Sequence: m[1],
			Type:     recType,
			Name:     name,
			Fields:   astmFields(strings.Split(m[3], "|"), recType),
			Raw:      line,
		})
	}

	var recordTypes []string
	seen := make(map[string]bool)
	raws := make([]string, 0, len(records))
	summaries := make([]RecordSummary, 0, len(records))
	for _, rec := range records {
		if !seen[rec.Type] {
			seen[rec.Type] = true
			recordTypes = append(recordTypes, rec.Type)
		}
		raws = append(raws, rec.Raw)
		summaries = append(summaries, RecordSummary{
			Name:   fmt.Sprintf("%s - %s", rec.Type, rec.Name),
			Fields: nonEmptyFields(rec.Fields, p.opts.MaxFieldsPerRecord),
		})
	}

	return &inspector.ParseResult{
		Format:    inspector.ASTM,
		Version:   astmVersion(text),
		Formatted: strings.Join(raws, "\n"),
		Analysis: ASTMAnalysis{
			RecordTypes: recordTypes,
			RecordCount: len(records),
			Records:     summaries,
		},
	}, nil
}

// astmFields labels the pipe-delimited fields of one record. Unlike HL7,
// position 1 is the first field of the record body; unmapped positions
// fall back to "<code> Field <position>".
func astmFields(fields []string, recType string) []inspector.Field {
	names := astmFieldNames[recType]

	out := make([]inspector.Field, 0, len(fields))
	for i, value := range fields {
		name := fmt.Sprintf("%s Field %d", recType, i+1)
		if i < len(names) {
			name = names[i]
		}
		out = append(out, inspector.Field{Name: name, Value: value, Position: i + 1})
	}
	return out
}

// astmVersion finds a known ASTM standard identifier anywhere in the text.
func astmVersion(text string) string {
	switch {
	case strings.Contains(text, "E1381"):
		return "E1381"
	case strings.Contains(text, "E1394"):
		return "E1394"
	case strings.Contains(text, "E1238"):
		return "E1238"
	default:
		return ""
	}
}
