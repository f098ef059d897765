package parse

import (
	"fmt"

	"github.com/medwire/inspector"
	"github.com/medwire/inspector/xmlmap"
)

// parseCDA parses an HL7 v3 Clinical Document Architecture document.
func (p *Parser) parseCDA(text string) (*inspector.ParseResult, error) {
	data := []byte(text)

	root, err := xmlmap.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", inspector.ErrMalformedInput, err)
	}

	return &inspector.ParseResult{
		Format:    inspector.HL7v3,
		Version:   "CDA",
		Formatted: xmlmap.PrettyPrint(data),
		Analysis: CDAAnalysis{
			DocumentType:      root.Name,
			TemplateID:        cdaTemplateID(root),
			Code:              cdaCode(root),
			Structure:         elementSummaries(root, p.opts.MaxStructureEntries),
			DetailedStructure: xmlmap.ToObject(root),
			ElementCount:      root.DescendantCount(),
		},
	}, nil
}

// cdaTemplateID reads the document templateId from the root element or,
// more commonly, from the root attribute of a direct templateId child.
func cdaTemplateID(root *xmlmap.Element) string {
	if v, ok := root.Attr("templateId"); ok {
		return v
	}
	if child := root.Child("templateId"); child != nil {
		if v, ok := child.Attr("root"); ok {
			return v
		}
	}
	return ""
}

// cdaCode reads the document type code from the root element or from the
// code attribute of a direct code child.
func cdaCode(root *xmlmap.Element) string {
	if v, ok := root.Attr("code"); ok {
		return v
	}
	if child := root.Child("code"); child != nil {
		if v, ok := child.Attr("code"); ok {
			return v
		}
	}
	return ""
}
