package detect

import (
	"regexp"

	"github.com/medwire/inspector"
)

// knownResourceTypes is the alternation of FHIR resource type names the
// fhir family trigger recognizes in a "resourceType" field.
const knownResourceTypes = "Patient|Observation|Bundle|Condition|Procedure|DiagnosticReport|" +
	"Encounter|Organization|Practitioner|Location|AllergyIntolerance|Immunization|Medication|" +
	"MedicationRequest|MedicationStatement|Goal|CarePlan|CareTeam|Device|DeviceRequest|" +
	"DeviceUseStatement|PractitionerRole|RelatedPerson|HealthcareService|ServiceRequest|" +
	"Appointment|AppointmentResponse|Schedule|Slot|Coverage|Claim|ClaimResponse|" +
	"ExplanationOfBenefit|Contract|ImmunizationEvaluation|ImmunizationRecommendation|" +
	"MeasureReport|QuestionnaireResponse|Task|Communication|CommunicationRequest|RequestGroup|" +
	"Basic|Binary|DocumentReference|List|Library|Measure|PlanDefinition|ActivityDefinition|" +
	"Questionnaire|OperationDefinition|SearchParameter|CompartmentDefinition|" +
	"ImplementationGuide|CapabilityStatement|StructureDefinition|ValueSet|CodeSystem|" +
	"ConceptMap|NamingSystem|TerminologyCapabilities|InsurancePlan|SubstanceDefinition|" +
	"RegulatedAuthorization|MedicinalProductDefinition|ClinicalUseDefinition|Evidence|" +
	"EvidenceReport|EvidenceVariable|ResearchStudy|ResearchSubject|EventDefinition|" +
	"ChargeItemDefinition|Invoice|Account|PaymentNotice|PaymentReconciliation|AuditEvent|" +
	"Consent|Provenance|Signature|DocumentManifest|SupplyDelivery|SupplyRequest|" +
	"VisionPrescription|RiskAssessment|GuidanceResponse|DetectedIssue|Flag|AdverseEvent|" +
	"FamilyMemberHistory|ClinicalImpression|ImagingStudy|Media|Specimen|BodyStructure|" +
	"ImagingSelection|MolecularSequence|GenomicStudy|BiologicallyDerivedProduct|Substance|" +
	"NutritionOrder|NutritionIntake|InventoryReport|InventoryItem|Transport|" +
	"DeviceAssociation|DeviceDispense|DeviceUsage|MessageDefinition|MessageHeader|" +
	"SubscriptionTopic|Subscription|SubscriptionStatus|Parameters|Resource"

// familyPatterns holds the trigger patterns per format family. Detection
// walks the families in inspector.Formats() order and the first family with
// any matching pattern wins; this is a priority list, not a best-match
// scorer.
var familyPatterns = map[inspector.Format][]*regexp.Regexp{
	inspector.HL7v2: {
		regexp.MustCompile(`^MSH\|`),
		regexp.MustCompile(`\|MSH\|`),
		regexp.MustCompile(`MSH\^~\\&`),
	},
	inspector.HL7v3: {
		regexp.MustCompile(`(?i)<ClinicalDocument[^>]*xmlns[^>]*hl7\.org`),
		regexp.MustCompile(`(?i)<ClinicalDocument[^>]*xmlns[^>]*CDA`),
		regexp.MustCompile(`(?i)<ClinicalDocument`),
		regexp.MustCompile(`(?i)<ContinuityOfCareRecord`),
	},
	inspector.FHIR: {
		regexp.MustCompile(`(?i)"resourceType"\s*:\s*"(` + knownResourceTypes + `)"`),
		regexp.MustCompile(`(?i)<([^>]+\s+)?resourceType\s*=\s*["']?(Patient|Observation|Bundle|[^"'>\s]+)["']?`),
		regexp.MustCompile(`(?i)<Bundle[^>]*xmlns[^>]*fhir`),
		regexp.MustCompile(`(?i)<Patient[^>]*xmlns[^>]*fhir`),
	},
	inspector.ASTM: {
		regexp.MustCompile(`^\d+H\|`),
		regexp.MustCompile(`^\d+P\|`),
		regexp.MustCompile(`^\d+O\|`),
		regexp.MustCompile(`^\d+R\|`),
		regexp.MustCompile(`^\d+L\|`),
		regexp.MustCompile("\x02" + `\d+[HPORL]\|`),
		regexp.MustCompile(`\\x02\d+[HPORL]\|`),
		regexp.MustCompile(`STX\d+[HPORL]\|`),
	},
	inspector.JSON: {
		regexp.MustCompile(`^\s*\{`),
		regexp.MustCompile(`^\s*\[`),
	},
	inspector.XML: {
		regexp.MustCompile(`(?i)^\s*<\?xml`),
		regexp.MustCompile(`^\s*<[^>]+>`),
	},
}

// versionPattern pairs a trigger with a version label. When the pattern
// carries a capture group, the captured text wins over the fixed label.
type versionPattern struct {
	re    *regexp.Regexp
	label string
}

// versionPatterns holds the per-family version triggers, first match wins.
//
// The hl7v2 entries look for a standalone |2.x| field. MSH-12 is usually
// followed by end-of-line rather than another pipe, so the version often
// goes undetected here even when present; the hl7v2 parser still reports
// MSH-12. Kept as-is to match the reference behavior.
var versionPatterns = map[inspector.Format][]versionPattern{
	inspector.HL7v2: {
		{regexp.MustCompile(`\|2\.1\|`), "v2.1"},
		{regexp.MustCompile(`\|2\.2\|`), "v2.2"},
		{regexp.MustCompile(`\|2\.3\|`), "v2.3"},
		{regexp.MustCompile(`\|2\.4\|`), "v2.4"},
		{regexp.MustCompile(`\|2\.5\|`), "v2.5"},
		{regexp.MustCompile(`\|2\.6\|`), "v2.6"},
		{regexp.MustCompile(`\|2\.7\|`), "v2.7"},
		{regexp.MustCompile(`\|2\.8\|`), "v2.8"},
		{regexp.MustCompile(`\|2\.9\|`), "v2.9"},
	},
	inspector.HL7v3: {
		{regexp.MustCompile(`(?i)CDA.*Release.*2`), "CDA R2"},
		{regexp.MustCompile(`(?i)CDA.*Release.*3`), "CDA R3"},
		{regexp.MustCompile(`(?i)xmlns.*CDA`), "CDA"},
	},
	inspector.FHIR: {
		{regexp.MustCompile(`(?i)"fhirVersion"\s*:\s*"([^"]+)"`), "FHIR"},
		{regexp.MustCompile(`(?i)xmlns.*fhir`), "FHIR"},
	},
	inspector.ASTM: {
		{regexp.MustCompile(`(?i)E1381`), "E1381"},
		{regexp.MustCompile(`(?i)E1394`), "E1394"},
		{regexp.MustCompile(`(?i)E1238`), "E1238"},
	},
}
