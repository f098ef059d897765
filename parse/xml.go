package parse

import (
	"fmt"
	"regexp"

	"github.com/medwire/inspector"
	"github.com/medwire/inspector/xmlmap"
)

// xmlDeclVersionRe reads the version attribute of an XML declaration.
var xmlDeclVersionRe = regexp.MustCompile(`(?i)<\?xml[^>]+version\s*=\s*["']([^"']+)["']`)

// parseXML parses a generic XML document. Inputs over the configured byte
// ceiling are rejected before parsing.
func (p *Parser) parseXML(text string) (*inspector.ParseResult, error) {
	if err := p.checkSize(text); err != nil {
		return nil, err
	}

	data := []byte(text)
	root, err := xmlmap.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", inspector.ErrMalformedInput, err)
	}

	var version string
	if m := xmlDeclVersionRe.FindStringSubmatch(text); m != nil {
		version = m[1]
	}

	return &inspector.ParseResult{
		Format:    inspector.XML,
		Version:   version,
		Formatted: xmlmap.PrettyPrint(data),
		Analysis: XMLAnalysis{
			RootElement:       root.Name,
			Structure:         elementSummaries(root, p.opts.MaxStructureEntries),
			DetailedStructure: xmlmap.ToObject(root),
			ElementCount:      root.DescendantCount(),
			Namespaces:        root.Namespaces(),
		},
	}, nil
}
