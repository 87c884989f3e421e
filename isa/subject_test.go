package isa

import "testing"

func TestSubjectCategories(t *testing.T) {
	tests := []struct {
		subject Subject
		check   func(Subject) bool
		name    string
	}{
		{SubjNull, Subject.IsSystem, "IsSystem"},
		{SubjWeather, Subject.IsCommonTopic, "IsCommonTopic"},
		{SubjTime, Subject.IsCommonTopic, "IsCommonTopic"},
		{SubjNumber, Subject.IsMathScience, "IsMathScience"},
		{SubjAPI, Subject.IsTechnology, "IsTechnology"},
		{SubjDocumentation, Subject.IsKnowledge, "IsKnowledge"},
		{SubjStress, Subject.IsEmotion, "IsEmotion"},
	}

	for _, tt := range tests {
		if !tt.check(tt.subject) {
			t.Errorf("%s: %s() = false, want true", tt.subject, tt.name)
		}
	}
}

func TestRAGReference(t *testing.T) {
	ref := RAGRef(0x0A3)
	if !ref.IsRAGReference() {
		t.Fatal("RAGRef(0x0A3) should be a RAG reference")
	}
	if ref.U16() != 0xE0A3 {
		t.Errorf("RAGRef(0x0A3).U16() = 0x%04X, want 0xE0A3", ref.U16())
	}
	id, ok := ref.RAGDocID()
	if !ok || id != 0x0A3 {
		t.Errorf("RAGDocID() = (0x%03X, %v), want (0x0A3, true)", id, ok)
	}

	if SubjUser.IsRAGReference() {
		t.Error("USER should not be a RAG reference")
	}
	if _, ok := SubjUser.RAGDocID(); ok {
		t.Error("USER should have no RAG doc id")
	}
}

func TestRAGReferenceClamp(t *testing.T) {
	// Ids above 12 bits clamp silently to the maximum.
	ref := RAGRef(0xFFFF)
	id, ok := ref.RAGDocID()
	if !ok || id != MaxRAGDocID {
		t.Errorf("RAGRef(0xFFFF).RAGDocID() = (0x%04X, %v), want (0x0FFF, true)", id, ok)
	}
	if ref.U16() != 0xEFFF {
		t.Errorf("RAGRef(0xFFFF).U16() = 0x%04X, want 0xEFFF", ref.U16())
	}
}

func TestTRMReference(t *testing.T) {
	ref := TRMRef(5)
	if !ref.IsTRMReference() {
		t.Fatal("TRMRef(5) should be a TRM reference")
	}
	if ref.U16() != 0x0605 {
		t.Errorf("TRMRef(5).U16() = 0x%04X, want 0x0605", ref.U16())
	}
	id, ok := ref.TRMModelID()
	if !ok || id != 5 {
		t.Errorf("TRMModelID() = (%d, %v), want (5, true)", id, ok)
	}

	if SubjUser.IsTRMReference() {
		t.Error("USER should not be a TRM reference")
	}

	// The full 8-bit id space fits without overflow.
	top := TRMRef(0xFF)
	if top.U16() != 0x06FF {
		t.Errorf("TRMRef(0xFF).U16() = 0x%04X, want 0x06FF", top.U16())
	}
}

func TestSubjectNames(t *testing.T) {
	tests := []struct {
		subject Subject
		want    string
	}{
		{SubjNull, "NULL"},
		{SubjTime, "TIME"},
		{SubjDocumentation, "DOCUMENTATION"},
		{RAGRef(0x42), "RAG_REF"},
		{TRMRef(3), "TRM_REF"},
		{SubjectFromU16(0x0700), "UNKNOWN"},
		{SubjectFromU16(0xFFFF), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.subject.Name(); got != tt.want {
			t.Errorf("Subject(0x%04X).Name() = %q, want %q", uint16(tt.subject), got, tt.want)
		}
	}
}

func TestSubjectRoundTripFullSpace(t *testing.T) {
	for v := 0; v <= 0xFFFF; v++ {
		if got := SubjectFromU16(uint16(v)).U16(); got != uint16(v) {
			t.Fatalf("SubjectFromU16(0x%04X).U16() = 0x%04X", v, got)
		}
	}
}

func TestSubjectString(t *testing.T) {
	tests := []struct {
		subject Subject
		want    string
	}{
		{SubjUser, "SUBJ(0x0002:USER)"},
		{RAGRef(0x0A3), "SUBJ(RAG:0xE0A3)"},
		{TRMRef(5), "SUBJ(TRM:0x05)"},
	}

	for _, tt := range tests {
		if got := tt.subject.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
