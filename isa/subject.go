package isa

import "fmt"

// ---------------------------------------------------------------------------
// Subject code space
// ---------------------------------------------------------------------------

// Subject identifies the topic or entity an instruction refers to. Like
// Action, subjects are 2-byte codes categorized by the high byte, and the
// code space is open-ended. Two sub-ranges are dynamic rather than
// cataloged: TRM references (0x0600-0x06FF) address another
// instruction-producing model by an 8-bit id, and RAG references
// (0xE000-0xEFFF) address a retrievable document by a 12-bit id.
type Subject uint16

// System subjects
const (
	SubjNull    Subject = 0x0000 // null/empty subject
	SubjSelf    Subject = 0x0001 // the system itself
	SubjUser    Subject = 0x0002 // the user
	SubjContext Subject = 0x0003 // current context
)

// Common topics
const (
	SubjWeather  Subject = 0x0100 // weather information
	SubjTime     Subject = 0x0101 // time of day
	SubjDate     Subject = 0x0102 // calendar date
	SubjSchedule Subject = 0x0103 // schedule/hours
	SubjHealth   Subject = 0x0104 // health topics
	SubjHelp     Subject = 0x0105 // help/assistance
	SubjTimezone Subject = 0x0106 // timezone
)

// Math/science subjects
const (
	SubjNumber    Subject = 0x0200 // numeric value
	SubjEquation  Subject = 0x0201 // mathematical equation
	SubjPhysics   Subject = 0x0202 // physics topic
	SubjChemistry Subject = 0x0203 // chemistry topic
)

// Technology subjects
const (
	SubjComputer Subject = 0x0300 // computer systems
	SubjSoftware Subject = 0x0301 // software
	SubjHardware Subject = 0x0302 // hardware
	SubjAI       Subject = 0x0303 // artificial intelligence
	SubjAPI      Subject = 0x0304 // API/interface
)

// Knowledge subjects
const (
	SubjDocumentation Subject = 0x0400 // documentation
	SubjConcept       Subject = 0x0401 // abstract concept
)

// Emotion subjects
const (
	SubjFeelings Subject = 0x0500 // general feelings
	SubjStress   Subject = 0x0501 // stress
	SubjAnxiety  Subject = 0x0502 // anxiety
)

// Dynamic reference ranges.
const (
	TRMRefStart Subject = 0x0600 // first TRM model reference
	TRMRefEnd   Subject = 0x06FF // last TRM model reference
	RAGRefStart Subject = 0xE000 // first RAG document reference
	RAGRefEnd   Subject = 0xEFFF // last RAG document reference

	// MaxRAGDocID is the largest addressable document id (12 bits).
	MaxRAGDocID uint16 = 0x0FFF
)

// subjectNames maps cataloged subjects to their display names.
var subjectNames = map[Subject]string{
	SubjNull:    "NULL",
	SubjSelf:    "SELF",
	SubjUser:    "USER",
	SubjContext: "CONTEXT",

	SubjWeather:  "WEATHER",
	SubjTime:     "TIME",
	SubjDate:     "DATE",
	SubjSchedule: "SCHEDULE",
	SubjHealth:   "HEALTH",
	SubjHelp:     "HELP",
	SubjTimezone: "TIMEZONE",

	SubjNumber:    "NUMBER",
	SubjEquation:  "EQUATION",
	SubjPhysics:   "PHYSICS",
	SubjChemistry: "CHEMISTRY",

	SubjComputer: "COMPUTER",
	SubjSoftware: "SOFTWARE",
	SubjHardware: "HARDWARE",
	SubjAI:       "AI",
	SubjAPI:      "API",

	SubjDocumentation: "DOCUMENTATION",
	SubjConcept:       "CONCEPT",

	SubjFeelings: "FEELINGS",
	SubjStress:   "STRESS",
	SubjAnxiety:  "ANXIETY",
}

// SubjectFromU16 creates a Subject from a raw 16-bit value. Every value is
// valid; unrecognized codes are preserved as-is.
func SubjectFromU16(v uint16) Subject {
	return Subject(v)
}

// U16 returns the raw 16-bit value.
func (s Subject) U16() uint16 {
	return uint16(s)
}

// Category returns the category byte (high byte).
func (s Subject) Category() uint8 {
	return uint8(s >> 8)
}

// Subcategory returns the subcategory byte (low byte).
func (s Subject) Subcategory() uint8 {
	return uint8(s)
}

// IsRAGReference reports whether this subject requires a document lookup.
func (s Subject) IsRAGReference() bool {
	return s >= RAGRefStart && s <= RAGRefEnd
}

// IsTRMReference reports whether this subject chains to another model.
func (s Subject) IsTRMReference() bool {
	return s >= TRMRefStart && s <= TRMRefEnd
}

// IsSystem reports whether this is a system subject (0x00xx).
func (s Subject) IsSystem() bool {
	return s <= 0x00FF
}

// IsCommonTopic reports whether this is a common topic (0x01xx).
func (s Subject) IsCommonTopic() bool {
	return s >= 0x0100 && s <= 0x01FF
}

// IsMathScience reports whether this is a math/science subject (0x02xx).
func (s Subject) IsMathScience() bool {
	return s >= 0x0200 && s <= 0x02FF
}

// IsTechnology reports whether this is a technology subject (0x03xx).
func (s Subject) IsTechnology() bool {
	return s >= 0x0300 && s <= 0x03FF
}

// IsKnowledge reports whether this is a knowledge subject (0x04xx).
func (s Subject) IsKnowledge() bool {
	return s >= 0x0400 && s <= 0x04FF
}

// IsEmotion reports whether this is an emotion subject (0x05xx).
func (s Subject) IsEmotion() bool {
	return s >= 0x0500 && s <= 0x05FF
}

// Name returns the display name for this subject. Cataloged names resolve
// first, then the dynamic ranges ("RAG_REF"/"TRM_REF"), then "UNKNOWN".
// It never fails.
func (s Subject) Name() string {
	if name, ok := subjectNames[s]; ok {
		return name
	}
	switch {
	case s.IsRAGReference():
		return "RAG_REF"
	case s.IsTRMReference():
		return "TRM_REF"
	}
	return "UNKNOWN"
}

// RAGRef creates a RAG reference for a document id. Ids above MaxRAGDocID
// are clamped, capping the addressable document space at 4096 entries.
func RAGRef(docID uint16) Subject {
	if docID > MaxRAGDocID {
		docID = MaxRAGDocID
	}
	return RAGRefStart + Subject(docID)
}

// TRMRef creates a TRM reference for an 8-bit model id.
func TRMRef(modelID uint8) Subject {
	return TRMRefStart + Subject(modelID)
}

// RAGDocID returns the document id when this subject is a RAG reference.
func (s Subject) RAGDocID() (uint16, bool) {
	if !s.IsRAGReference() {
		return 0, false
	}
	return uint16(s - RAGRefStart), true
}

// TRMModelID returns the model id when this subject is a TRM reference.
func (s Subject) TRMModelID() (uint8, bool) {
	if !s.IsTRMReference() {
		return 0, false
	}
	return uint8(s - TRMRefStart), true
}

// String implements the Stringer interface.
func (s Subject) String() string {
	if s.IsRAGReference() {
		return fmt.Sprintf("SUBJ(RAG:0x%04X)", uint16(s))
	}
	if id, ok := s.TRMModelID(); ok {
		return fmt.Sprintf("SUBJ(TRM:0x%02X)", id)
	}
	return fmt.Sprintf("SUBJ(0x%04X:%s)", uint16(s), s.Name())
}
