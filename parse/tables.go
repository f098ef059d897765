package parse

// Static lookup tables for human-readable labels. These are fixed
// vocabulary from the HL7 v2, ASTM and FHIR standards; unknown codes fall
// back to the code itself (names) or a positional label (fields).

// hl7MessageTypes maps HL7 v2 message type codes (MSH-9 first component)
// to their standard descriptions.
var hl7MessageTypes = map[string]string{
	"ACK": "General acknowledgment",
	"ADR": "ADT response",
	"ADT": "Admission, discharge, transfer",
	"BAR": "Add/change billing account",
	"DFT": "Detailed financial transaction",
	"DOC": "Document response",
	"DSR": "Display response",
	"EAC": "Automated equipment command",
	"EAN": "Automated equipment notification",
	"EAR": "Automated equipment response",
	"EDR": "Enhanced display response",
	"EQQ": "Embedded query language query",
	"ERP": "Event replay response",
	"ESR": "Automated equipment status update acknowledgment",
	"ESU": "Automated equipment status update",
	"INR": "Automated equipment inventory request",
	"INU": "Automated equipment inventory update",
	"LSR": "Automated equipment log/service request",
	"LSU": "Automated equipment log/service update",
	"MCF": "Delayed acknowledgment",
	"MDM": "Medical document management",
	"MFD": "Master files delayed application acknowledgment",
	"MFK": "Master files application acknowledgment",
	"MFN": "Master files notification",
	"MFQ": "Master files query",
	"MFR": "Master files response",
	"NMD": "Application management data message",
	"NMQ": "Application management query message",
	"NMR": "Application management response message",
	"OMD": "Dietary order",
	"OMG": "General clinical order",
	"OMI": "Imaging order",
	"OML": "Laboratory order",
	"OMN": "Non-stock requisition order",
	"OMP": "Pharmacy/treatment order",
	"OMS": "Stock requisition order",
	"OMT": "Pharmacy/treatment order",
	"OPL": "Population/location-based laboratory order",
	"OPR": "Population/location-based laboratory order acknowledgment",
	"OPU": "Unsolicited population/location-based laboratory observation",
	"ORA": "Observation report acknowledgment",
	"ORD": "Dietary order acknowledgment",
	"ORF": "Query for results of observation",
	"ORG": "General clinical order acknowledgment",
	"ORI": "Imaging order acknowledgment",
	"ORL": "Laboratory acknowledgment",
	"ORM": "Order message",
	"ORN": "Non-stock requisition - General order acknowledgment",
	"ORP": "Pharmacy/treatment order acknowledgment",
	"ORR": "General order response message response to any ORM",
	"ORS": "Stock requisition - Order acknowledgment",
	"ORT": "Pharmacy/treatment order acknowledgment",
	"ORU": "Unsolicited transmission of an observation message",
	"OUL": "Unsolicited laboratory observation",
	"PEX": "Unsolicited personnel/equipment status update",
	"PGL": "Patient goal message",
	"PIN": "Patient insurance information",
	"PMU": "Add personnel record",
	"PPG": "Patient pathway message (goal-oriented)",
	"PPP": "Patient pathway message (problem-oriented)",
	"PPR": "Patient problem message",
	"PPT": "Patient pathway goal-oriented response",
	"PPV": "Patient goal response",
	"PRR": "Patient problem response",
	"PTR": "Patient pathway problem-oriented response",
	"QBP": "Query by parameter",
	"QCK": "Query general acknowledgment",
	"QCN": "Cancel query",
	"QRY": "Query, original mode",
	"QSB": "Create subscription",
	"QSX": "Cancel subscription/acknowledge message",
	"QVR": "Query for previous events",
	"RAR": "Pharmacy/treatment administration acknowledgment",
	"RAS": "Pharmacy/treatment administration",
	"RCI": "Return clinical information",
	"RCL": "Return clinical list",
	"RDE": "Pharmacy/treatment encoded order",
	"RDR": "Pharmacy/treatment dispense acknowledgment",
	"RDS": "Pharmacy/treatment dispense",
	"RDY": "Display based response",
	"REF": "Patient referral",
	"RER": "Pharmacy/treatment encoded order acknowledgment",
	"RGR": "Pharmacy/treatment dose acknowledgment",
	"RGV": "Pharmacy/treatment give",
	"ROR": "Pharmacy/treatment order response",
	"RPA": "Return patient authorization",
	"RPI": "Return patient information",
	"RPL": "Return patient display list",
	"RPR": "Return patient list",
	"RQA": "Request patient authorization",
	"RQC": "Request clinical information",
	"RQI": "Request patient information",
	"RQP": "Request patient demographics",
	"RRA": "Pharmacy/treatment administration acknowledgment",
	"RRD": "Return patient display data",
	"RRE": "Pharmacy/treatment encoded order acknowledgment",
	"RRG": "Pharmacy/treatment give acknowledgment",
	"RRI": "Return referral information",
	"RSP": "Segment pattern response",
	"RTB": "Tabular response",
	"SIU": "Schedule information unsolicited",
	"SPQ": "Stored procedure request",
	"SQM": "Schedule query message",
	"SQR": "Schedule query response",
	"SRM": "Schedule request message",
	"SRR": "Scheduled request response",
	"SSR": "Specimen status request message",
	"SSU": "Specimen status update message",
	"SUR": "Summary product experience report",
	"TBR": "Tabular data response",
	"TCR": "Automated equipment test code settings request",
	"TCU": "Automated equipment test code settings update",
	"UDM": "Unsolicited display update message",
	"VXQ": "Query for vaccination record",
	"VXR": "Vaccination record response",
	"VXU": "Unsolicited vaccination record update",
	"VXX": "Response for vaccination query with multiple PID matches",
}

// hl7SegmentNames maps HL7 v2 segment codes to their standard names.
var hl7SegmentNames = map[string]string{
	"MSH": "Message Header",
	"SFT": "Software Segment",
	"UAC": "User Authentication Credential",
	"EVN": "Event Type",
	"PID": "Patient Identification",
	"PD1": "Patient Additional Demographics",
	"ARV": "Access Restriction",
	"ROL": "Role",
	"NK1": "Next of Kin / Associated Parties",
	"PV1": "Patient Visit",
	"PV2": "Patient Visit - Additional Information",
	"DB1": "Disability",
	"OBX": "Observation/Result",
	"AL1": "Patient Allergy Information",
	"DG1": "Diagnosis",
	"DRG": "Diagnosis Related Group",
	"PR1": "Procedures",
	"GT1": "Guarantor",
	"IN1": "Insurance",
	"IN2": "Insurance Additional Information",
	"IN3": "Insurance Additional Information, Certification",
	"ACC": "Accident",
	"UB1": "UB82",
	"UB2": "UB92 Data",
	"PDA": "Patient Death and Autopsy",
	"ORC": "Common Order",
	"OBR": "Observation Request",
	"NTE": "Notes and Comments",
	"CTI": "Clinical Trial Identification",
	"FT1": "Financial Transaction",
	"CTD": "Contact Data",
	"PRD": "Provider Data",
	"PRT": "Participation Information",
	"TXA": "Transcription Document Header",
	"CON": "Consent Segment",
	"MSA": "Message Acknowledgment",
	"ERR": "Error",
	"QAK": "Query Acknowledgment",
	"QPD": "Query Parameter Definition",
	"QRI": "Query Response Instance",
	"DSC": "Continuation Pointer",
	"QRD": "Original-Style Query Definition",
	"QRF": "Original-Style Query Filter",
	"RCP": "Response Control Parameter",
	"SPM": "Specimen",
	"SAC": "Specimen and Container Detail",
	"TCD": "Test Code Detail",
	"SID": "Substance Identifier",
	"TCC": "Test Code Configuration",
	"RXO": "Pharmacy/Treatment Order",
	"RXR": "Pharmacy/Treatment Route",
	"RXC": "Pharmacy/Treatment Component Order",
	"RXE": "Pharmacy/Treatment Encoded Order",
	"RXD": "Pharmacy/Treatment Dispense",
	"RXG": "Pharmacy/Treatment Give",
	"RXA": "Pharmacy/Treatment Administration",
	"BPO": "Blood Product Order",
	"BPX": "Blood Product Dispense Status",
	"BTX": "Blood Product Transfusion/Disposition",
	"SCH": "Scheduling Activity Information",
	"AIG": "Appointment Information - General Resource",
	"AIL": "Appointment Information - Location Resource",
	"AIP": "Appointment Information - Personnel Resource",
	"AIS": "Appointment Information - Service",
	"APR": "Appointment Preferences",
	"RGS": "Resource Group",
	"NDS": "Notification Detail",
}

// hl7FieldNames maps a segment code to the field names for positions
// 1..n. MSH-1 is the field separator itself, so for MSH the table labels
// start at the encoding characters and field numbering is offset by one
// relative to every other segment.
var hl7FieldNames = map[string][]string{
	"MSH": {
		"Field Separator", "Encoding Characters", "Sending Application", "Sending Facility",
		"Receiving Application", "Receiving Facility", "Date/Time of Message", "Security",
		"Message Type", "Message Control ID", "Processing ID", "Version ID",
	},
	"PID": {
		"Set ID", "Patient ID", "Patient Identifier List", "Alternate Patient ID",
		"Patient Name", "Mother's Maiden Name", "Date/Time of Birth", "Administrative Sex",
		"Patient Alias", "Race", "Patient Address", "County Code", "Phone Number - Home",
		"Phone Number - Business", "Primary Language",
	},
	"OBX": {
		"Set ID", "Value Type", "Observation Identifier", "Observation Sub-ID",
		"Observation Value", "Units", "References Range", "Abnormal Flags",
		"Probability", "Nature of Abnormal Test", "Observation Result Status", "Effective Date",
	},
	"OBR": {
		"Set ID", "Placer Order Number", "Filler Order Number", "Universal Service Identifier",
		"Priority", "Requested Date/Time", "Observation Date/Time", "Observation End Date/Time",
		"Collection Volume", "Collector Identifier", "Specimen Action Code",
	},
}

// astmRecordNames maps ASTM record type codes to their descriptions.
var astmRecordNames = map[string]string{
	"H": "Header Record - Contains sender and receiver information",
	"P": "Patient Information Record - Contains patient demographics",
	"O": "Test Order Record - Contains test order information",
	"R": "Result Record - Contains test results",
	"C": "Comment Record - Contains comments",
	"M": "Manufacturer Information Record - Contains manufacturer info",
	"S": "Scientific Record - Contains scientific data",
	"L": "Terminator Record - Indicates end of transmission",
}

// astmFieldNames maps a record type code to the field names for positions
// 1..n.
var astmFieldNames = map[string][]string{
	"H": {
		"Delimiter Definition", "Message Control ID", "Access Password", "Sender Name/ID",
		"Sender Address", "Reserved", "Sender Phone", "Sender Characteristics",
		"Receiver ID", "Comment", "Processing ID", "Version Number", "Timestamp",
	},
	"P": {
		"Practice Patient ID", "Lab Patient ID", "Patient ID 3", "Patient Name",
		"Mother's Maiden Name", "Birth Date", "Patient Sex", "Patient Race",
		"Patient Address", "Reserved", "Patient Phone", "Attending Physician",
	},
	"O": {
		"Specimen ID", "Instrument Specimen ID", "Universal Test ID", "Priority",
		"Requested Date/Time", "Collection Date/Time", "Collection End Time",
		"Collection Volume", "Collector ID", "Action Code", "Danger Code",
		"Relevant Clinical Info",
	},
	"R": {
		"Universal Test ID", "Data Value", "Units", "Reference Range",
		"Abnormal Flag", "Nature of QC", "Result Status", "Date Changed",
		"Operator ID", "Date/Time Started", "Date/Time Completed", "Instrument ID",
	},
}

// fhirResourceDescriptions maps FHIR resource types to short descriptions.
var fhirResourceDescriptions = map[string]string{
	"Patient":               "Demographics and other administrative information about an individual",
	"Observation":           "Measurements and simple assertions made about a patient",
	"Condition":             "A clinical condition, problem, diagnosis, or other event",
	"Procedure":             "An action that is or was performed on a patient",
	"MedicationRequest":     "An order or request for medication",
	"DiagnosticReport":      "The findings and interpretation of diagnostic tests",
	"Encounter":             "An interaction between a patient and healthcare provider",
	"Organization":          "A formally or informally recognized grouping of people",
	"Practitioner":          "A person who is directly or indirectly involved in healthcare",
	"Location":              "Details and position information for a physical place",
	"AllergyIntolerance":    "Risk of harmful or undesirable physiological response",
	"Immunization":          "Describes the event of a patient being administered a vaccine",
	"Bundle":                "A container for a collection of resources",
	"OperationOutcome":      "Information about the success/failure of an action",
	"MedicationStatement":   "A record of a medication that is being consumed by a patient",
	"Goal":                  "Describes the intended objective(s) for a patient",
	"CarePlan":              "Describes the intention of how one or more practitioners intend to deliver care",
	"CareTeam":              "The Care Team includes all the people and organizations who plan to participate",
	"Device":                "A type of a manufactured item that is used in healthcare",
	"DeviceRequest":         "Represents a request for a patient to employ a medical device",
	"DeviceUseStatement":    "A record of a device being used by a patient",
	"Flag":                  "Prospective warnings of potential issues when providing care to the patient",
	"List":                  "A collection of resources",
	"Composition":           "A set of healthcare-related information that is assembled together",
	"DocumentReference":     "A reference to a document",
	"Media":                 "A photo, video, or audio recording acquired or used in healthcare",
	"Specimen":              "A sample to be used for analysis",
	"BodyStructure":         "Record details about an anatomical structure",
	"Substance":             "A homogeneous material with definite composition",
	"Task":                  "A task to be performed",
	"Appointment":           "A booking of a healthcare event among patient(s), practitioner(s), related person(s) and/or device(s)",
	"AppointmentResponse":   "A reply to an appointment request for a patient and/or practitioner(s)",
	"Schedule":              "A container for slots of time that may be available for booking appointments",
	"Slot":                  "A slot of time on a schedule that may be available for booking appointments",
	"HealthcareService":     "The details of a healthcare service available at a location",
	"Coverage":              "Financial instrument which may be used to reimburse or pay for health care products and services",
	"Claim":                 "A provider issued list of professional services and products",
	"ClaimResponse":         "Remittance resource",
	"PaymentNotice":         "This resource provides the status of the payment for goods and services rendered",
	"PaymentReconciliation": "This resource provides the details including amount of a payment",
}
