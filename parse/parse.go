// Package parse turns raw healthcare messages into a normalized,
// pretty-printed form plus a bounded structural analysis.
//
// The Parser dispatches on the closed format enum to one sub-parser per
// format. Sub-parser failures are wrapped exactly once into
// *inspector.ParseError, so callers always see the same error shape no
// matter which format failed. Parsing never mutates its input, holds no
// state between calls, and bounds its worst-case work through the limits
// in inspector.Options.
package parse

import (
	"fmt"
	"regexp"
	"time"

	"github.com/medwire/inspector"
)

// Parser parses messages of all supported formats.
type Parser struct {
	opts    *inspector.Options
	metrics *inspector.Metrics
}

// New creates a Parser with the given options.
func New(opts ...inspector.Option) *Parser {
	o := inspector.DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Parser{opts: o, metrics: inspector.NewMetrics()}
}

// Metrics returns the parser's activity metrics.
func (p *Parser) Metrics() *inspector.Metrics {
	return p.metrics
}

// Parse parses text as the given format. On failure the returned error is
// always a *inspector.ParseError wrapping the sub-parser's failure.
func (p *Parser) Parse(text string, format inspector.Format) (*inspector.ParseResult, error) {
	start := time.Now()
	result, err := p.parse(text, format)
	p.metrics.RecordParse(format, time.Since(start), err == nil)
	if err != nil {
		return nil, inspector.NewParseError(format, err)
	}
	return result, nil
}

func (p *Parser) parse(text string, format inspector.Format) (*inspector.ParseResult, error) {
	switch format {
	case inspector.HL7v2:
		return p.parseHL7v2(text)
	case inspector.HL7v3:
		return p.parseCDA(text)
	case inspector.FHIR:
		return p.parseFHIR(text)
	case inspector.ASTM:
		return p.parseASTM(text)
	case inspector.JSON:
		return p.parseJSON(text)
	case inspector.XML:
		return p.parseXML(text)
	default:
		return nil, fmt.Errorf("%w: %s", inspector.ErrUnsupportedFormat, format)
	}
}

// checkSize enforces the byte ceiling on the JSON and XML paths. The
// line-oriented formats have no ceiling; their work is already linear in
// the input.
func (p *Parser) checkSize(text string) error {
	if len(text) > p.opts.MaxInputSize {
		return fmt.Errorf("%w (max %dMB)", inspector.ErrSizeLimit, p.opts.MaxInputSize/(1024*1024))
	}
	return nil
}

var lineSplitRe = regexp.MustCompile(`\r\n|\r|\n`)

// splitLines splits on CR, LF or CRLF and drops blank lines.
func splitLines(text string) []string {
	var out []string
	for _, line := range lineSplitRe.Split(text, -1) {
		if !isBlank(line) {
			out = append(out, line)
		}
	}
	return out
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' {
			return false
		}
	}
	return true
}
