// Package inspector classifies and parses healthcare data interchange
// formats: HL7 v2.x, HL7 v3 (CDA), FHIR, ASTM, generic JSON and generic XML.
//
// The package is split into a small root package of value types and a set of
// engine subpackages:
//
//   - detect: format detection with heuristic confidence scoring
//   - parse: per-format parsers producing a normalized form plus analysis
//   - xmlmap: XML element tree to generic-object conversion
//   - tree: bounded structure trees for interactive inspection
//   - worker: parallel batch parsing of independent messages
//
// # Quick Start
//
//	import (
//	    "github.com/medwire/inspector/detect"
//	    "github.com/medwire/inspector/parse"
//	)
//
//	det := detect.New()
//	guess := det.Detect(raw)
//	if guess == nil {
//	    // no format could be determined
//	}
//
//	parser := parse.New()
//	result, err := parser.Parse(raw, guess.Format)
//	if err != nil {
//	    // err is always a *inspector.ParseError
//	}
//	fmt.Println(result.Formatted)
//
// # Bounded Work
//
// Every operation is a pure function of its input and its worst-case cost is
// bounded deliberately: JSON and XML inputs over 10 MiB are rejected before
// parsing, the JSON depth probe stops at 100 levels, and analysis trees are
// capped in both depth and item count. The engine holds no mutable state
// across calls, so concurrent use needs no locking.
//
// # What This Is Not
//
// The engine does not validate messages against authoritative schemas (no
// HL7 conformance profiles, no FHIR StructureDefinition validation), does
// not persist anything, and does not mutate its input.
package inspector
