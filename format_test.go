package inspector

import "testing"

func TestFormat_IsValid(t *testing.T) {
	tests := []struct {
		format Format
		want   bool
	}{
		{HL7v2, true},
		{HL7v3, true},
		{FHIR, true},
		{ASTM, true},
		{JSON, true},
		{XML, true},
		{Format(""), false},
		{Format("hl7"), false},
		{Format("FHIR"), false},
	}

	for _, tt := range tests {
		if got := tt.format.IsValid(); got != tt.want {
			t.Errorf("Format(%q).IsValid() = %v; want %v", tt.format, got, tt.want)
		}
	}
}

func TestFormats_PriorityOrder(t *testing.T) {
	got := Formats()
	want := []Format{HL7v2, HL7v3, FHIR, ASTM, JSON, XML}

	if len(got) != len(want) {
		t.Fatalf("Formats() returned %d formats; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Formats()[%d] = %q; want %q", i, got[i], want[i])
		}
	}
}

func TestFormat_String(t *testing.T) {
	if got := HL7v2.String(); got != "hl7v2" {
		t.Errorf("HL7v2.String() = %q; want %q", got, "hl7v2")
	}
}
