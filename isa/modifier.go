package isa

import "fmt"

// ---------------------------------------------------------------------------
// Modifier bitfield
// ---------------------------------------------------------------------------

// Modifier controls the style of opcode output. It is a 2-byte value packed
// into six adjacent 2-bit fields, most-significant first:
//
//	Bit:  15  14  13  12  11  10   9   8   7   6   5   4   3   2   1   0
//	      [--VOICE--] [--TONE--] [-WARM-] [-FORMAT-] [ACCURCY] [URGENCY] [RSVD]
//
// The low 4 bits are reserved and preserved verbatim on every operation.
// All setters are functional: they return a new value, so modifiers are
// trivially shareable across goroutines.
type Modifier uint16

// Field bit masks and shifts.
const (
	voiceMask    Modifier = 0xC000
	toneMask     Modifier = 0x3000
	warmthMask   Modifier = 0x0C00
	formatMask   Modifier = 0x0300
	accuracyMask Modifier = 0x00C0
	urgencyMask  Modifier = 0x0030

	voiceShift    = 14
	toneShift     = 12
	warmthShift   = 10
	formatShift   = 8
	accuracyShift = 6
	urgencyShift  = 4
)

// Voice is the speaking style.
type Voice uint8

const (
	VoiceNeutral   Voice = iota // default neutral voice
	VoiceFormal                 // formal/professional
	VoiceCasual                 // casual/conversational
	VoiceTechnical              // technical/precise
)

// Tone is the emotional tone.
type Tone uint8

const (
	ToneNeutral    Tone = iota // neutral tone
	TonePositive               // positive/upbeat
	ToneEmpathetic             // empathetic/understanding
	ToneCautious               // cautious/careful
)

// Warmth is the interpersonal warmth level.
type Warmth uint8

const (
	WarmthCold     Warmth = iota // cold/distant
	WarmthNeutral                // neutral warmth
	WarmthWarm                   // warm/friendly
	WarmthVeryWarm               // very warm/caring
)

// Format is the output format.
type Format uint8

const (
	FormatProse      Format = iota // prose/paragraph
	FormatBulleted                 // bulleted list
	FormatNumbered                 // numbered list
	FormatStructured               // structured output
)

// Accuracy is the confidence level.
type Accuracy uint8

const (
	AccuracyLow      Accuracy = iota // low confidence
	AccuracyMedium                   // medium confidence
	AccuracyHigh                     // high confidence
	AccuracyVerified                 // verified/certain
)

// Urgency is the priority level.
type Urgency uint8

const (
	UrgencyLow      Urgency = iota // low priority
	UrgencyNormal                  // normal priority
	UrgencyHigh                    // high priority
	UrgencyCritical                // critical priority
)

var voiceNames = [4]string{"Neutral", "Formal", "Casual", "Technical"}
var toneNames = [4]string{"Neutral", "Positive", "Empathetic", "Cautious"}
var warmthNames = [4]string{"Cold", "Neutral", "Warm", "VeryWarm"}
var formatNames = [4]string{"Prose", "Bulleted", "Numbered", "Structured"}
var accuracyNames = [4]string{"Low", "Medium", "High", "Verified"}
var urgencyNames = [4]string{"Low", "Normal", "High", "Critical"}

func (v Voice) String() string    { return voiceNames[v&3] }
func (t Tone) String() string     { return toneNames[t&3] }
func (w Warmth) String() string   { return warmthNames[w&3] }
func (f Format) String() string   { return formatNames[f&3] }
func (a Accuracy) String() string { return accuracyNames[a&3] }
func (u Urgency) String() string  { return urgencyNames[u&3] }

// ModifierFromU16 creates a Modifier from a raw 16-bit value.
func ModifierFromU16(v uint16) Modifier {
	return Modifier(v)
}

// U16 returns the raw 16-bit value.
func (m Modifier) U16() uint16 {
	return uint16(m)
}

// DefaultModifier is the standard persona: neutral voice, tone, and format
// with neutral warmth, medium accuracy, and normal urgency. The exact bit
// pattern (0x0450) is part of the wire contract.
func DefaultModifier() Modifier {
	return Modifier(0x0400 | 0x0040 | 0x0010) // WarmthNeutral | AccuracyMedium | UrgencyNormal
}

// Each getter shifts its 2-bit field directly into the enum. A 2-bit mask
// admits exactly the 4 enum values, so decode is total by construction.

// Voice returns the voice style field.
func (m Modifier) Voice() Voice {
	return Voice((m & voiceMask) >> voiceShift)
}

// Tone returns the tone field.
func (m Modifier) Tone() Tone {
	return Tone((m & toneMask) >> toneShift)
}

// Warmth returns the warmth field.
func (m Modifier) Warmth() Warmth {
	return Warmth((m & warmthMask) >> warmthShift)
}

// Format returns the output format field.
func (m Modifier) Format() Format {
	return Format((m & formatMask) >> formatShift)
}

// Accuracy returns the accuracy field.
func (m Modifier) Accuracy() Accuracy {
	return Accuracy((m & accuracyMask) >> accuracyShift)
}

// Urgency returns the urgency field.
func (m Modifier) Urgency() Urgency {
	return Urgency((m & urgencyMask) >> urgencyShift)
}

// Each setter clears only its own field's bits and ORs in the new value,
// leaving every other bit, including the reserved low 4, untouched.

// WithVoice returns a copy with the voice field replaced.
func (m Modifier) WithVoice(v Voice) Modifier {
	return (m &^ voiceMask) | Modifier(v&3)<<voiceShift
}

// WithTone returns a copy with the tone field replaced.
func (m Modifier) WithTone(t Tone) Modifier {
	return (m &^ toneMask) | Modifier(t&3)<<toneShift
}

// WithWarmth returns a copy with the warmth field replaced.
func (m Modifier) WithWarmth(w Warmth) Modifier {
	return (m &^ warmthMask) | Modifier(w&3)<<warmthShift
}

// WithFormat returns a copy with the format field replaced.
func (m Modifier) WithFormat(f Format) Modifier {
	return (m &^ formatMask) | Modifier(f&3)<<formatShift
}

// WithAccuracy returns a copy with the accuracy field replaced.
func (m Modifier) WithAccuracy(a Accuracy) Modifier {
	return (m &^ accuracyMask) | Modifier(a&3)<<accuracyShift
}

// WithUrgency returns a copy with the urgency field replaced.
func (m Modifier) WithUrgency(u Urgency) Modifier {
	return (m &^ urgencyMask) | Modifier(u&3)<<urgencyShift
}

// CrisisModifier is a crisis-appropriate preset: empathetic, very warm,
// high urgency, high accuracy.
func CrisisModifier() Modifier {
	return Modifier(0).
		WithTone(ToneEmpathetic).
		WithWarmth(WarmthVeryWarm).
		WithUrgency(UrgencyHigh).
		WithAccuracy(AccuracyHigh)
}

// ProfessionalModifier is a formal preset: formal voice, neutral warmth,
// high accuracy, normal urgency.
func ProfessionalModifier() Modifier {
	return Modifier(0).
		WithVoice(VoiceFormal).
		WithWarmth(WarmthNeutral).
		WithAccuracy(AccuracyHigh).
		WithUrgency(UrgencyNormal)
}

// FriendlyModifier is a casual preset: casual voice, positive tone, warm,
// normal urgency.
func FriendlyModifier() Modifier {
	return Modifier(0).
		WithVoice(VoiceCasual).
		WithTone(TonePositive).
		WithWarmth(WarmthWarm).
		WithUrgency(UrgencyNormal)
}

// String implements the Stringer interface.
func (m Modifier) String() string {
	return fmt.Sprintf("MOD(0x%04X: %s/%s/%s/%s)",
		uint16(m), m.Voice(), m.Tone(), m.Warmth(), m.Format())
}
