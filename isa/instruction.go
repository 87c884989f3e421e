package isa

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// ---------------------------------------------------------------------------
// Instruction codec
// ---------------------------------------------------------------------------

// InstructionSize is the size of a single encoded instruction in bytes.
const InstructionSize = 6

// ISAVersion is the current instruction set version.
const ISAVersion = "0.1.0"

// Instruction is a single 6-byte instruction (ACT + SUBJ + MOD).
//
// Wire format (big-endian per field):
//
//	Byte:  0      1      2       3       4      5
//	      [ACT_HI][ACT_LO][SUBJ_HI][SUBJ_LO][MOD_HI][MOD_LO]
type Instruction struct {
	Action   Action
	Subject  Subject
	Modifier Modifier
}

// LengthError reports a byte buffer whose length does not match (or is not
// a multiple of) the structurally required size.
type LengthError struct {
	Actual   int
	Expected int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("invalid byte length: got %d, expected multiple of %d", e.Actual, e.Expected)
}

// OpcodeError reports malformed opcode text or an unrecognized tag byte.
type OpcodeError struct {
	Input string
}

func (e *OpcodeError) Error() string {
	return fmt.Sprintf("invalid opcode string: %s", e.Input)
}

// NewInstruction creates an instruction from its three components.
func NewInstruction(action Action, subject Subject, modifier Modifier) Instruction {
	return Instruction{Action: action, Subject: subject, Modifier: modifier}
}

// Simple creates an instruction with the default modifier.
func Simple(action Action, subject Subject) Instruction {
	return NewInstruction(action, subject, DefaultModifier())
}

// ParseOne decodes a single instruction from exactly 6 bytes.
func ParseOne(b []byte) (Instruction, error) {
	if len(b) != InstructionSize {
		return Instruction{}, &LengthError{Actual: len(b), Expected: InstructionSize}
	}
	return Instruction{
		Action:   Action(binary.BigEndian.Uint16(b[0:2])),
		Subject:  Subject(binary.BigEndian.Uint16(b[2:4])),
		Modifier: Modifier(binary.BigEndian.Uint16(b[4:6])),
	}, nil
}

// ParseAll decodes consecutive 6-byte instructions from a packed stream.
// The buffer length must be an exact multiple of InstructionSize.
func ParseAll(b []byte) ([]Instruction, error) {
	if len(b)%InstructionSize != 0 {
		return nil, &LengthError{Actual: len(b), Expected: InstructionSize}
	}
	out := make([]Instruction, 0, len(b)/InstructionSize)
	for i := 0; i < len(b); i += InstructionSize {
		instr, err := ParseOne(b[i : i+InstructionSize])
		if err != nil {
			return nil, err
		}
		out = append(out, instr)
	}
	return out, nil
}

// Bytes encodes the instruction to its 6-byte big-endian form.
func (i Instruction) Bytes() [InstructionSize]byte {
	var b [InstructionSize]byte
	binary.BigEndian.PutUint16(b[0:2], uint16(i.Action))
	binary.BigEndian.PutUint16(b[2:4], uint16(i.Subject))
	binary.BigEndian.PutUint16(b[4:6], uint16(i.Modifier))
	return b
}

// EncodeAll packs multiple instructions into a single byte stream.
func EncodeAll(instrs []Instruction) []byte {
	out := make([]byte, 0, len(instrs)*InstructionSize)
	for _, instr := range instrs {
		b := instr.Bytes()
		out = append(out, b[:]...)
	}
	return out
}

// NeedsRAG reports whether this instruction requires a document lookup.
func (i Instruction) NeedsRAG() bool {
	return i.Subject.IsRAGReference()
}

// IsChain reports whether this instruction chains to another model, either
// through a chain-category action or a TRM reference subject.
func (i Instruction) IsChain() bool {
	return i.Action.IsChain() || i.Subject.IsTRMReference()
}

// IsSystem reports whether this is a system instruction.
func (i Instruction) IsSystem() bool {
	return i.Action.IsSystem()
}

// OpcodeString renders the compact text form "AAAA:SSSS:MMMM" (uppercase
// hex, zero-padded).
func (i Instruction) OpcodeString() string {
	return fmt.Sprintf("%04X:%04X:%04X", uint16(i.Action), uint16(i.Subject), uint16(i.Modifier))
}

// ParseOpcodeString parses the compact text form, e.g. "0100:0101:0050".
func ParseOpcodeString(s string) (Instruction, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return Instruction{}, &OpcodeError{Input: s}
	}
	var fields [3]uint16
	for n, part := range parts {
		v, err := strconv.ParseUint(part, 16, 16)
		if err != nil {
			return Instruction{}, &OpcodeError{Input: s}
		}
		fields[n] = uint16(v)
	}
	return Instruction{
		Action:   Action(fields[0]),
		Subject:  Subject(fields[1]),
		Modifier: Modifier(fields[2]),
	}, nil
}

// String implements the Stringer interface.
func (i Instruction) String() string {
	return fmt.Sprintf("[%s | %s | %s]", i.Action, i.Subject, i.Modifier)
}

// ---------------------------------------------------------------------------
// InstructionBuilder: fluent construction
// ---------------------------------------------------------------------------

// InstructionBuilder constructs instructions fluently. The subject defaults
// to SubjNull and the modifier to DefaultModifier.
type InstructionBuilder struct {
	action   Action
	subject  Subject
	modifier Modifier
}

// NewInstructionBuilder starts building with an action.
func NewInstructionBuilder(action Action) *InstructionBuilder {
	return &InstructionBuilder{
		action:   action,
		subject:  SubjNull,
		modifier: DefaultModifier(),
	}
}

// Subject sets the subject.
func (b *InstructionBuilder) Subject(s Subject) *InstructionBuilder {
	b.subject = s
	return b
}

// Modifier replaces the modifier wholesale.
func (b *InstructionBuilder) Modifier(m Modifier) *InstructionBuilder {
	b.modifier = m
	return b
}

// Voice sets the modifier's voice field.
func (b *InstructionBuilder) Voice(v Voice) *InstructionBuilder {
	b.modifier = b.modifier.WithVoice(v)
	return b
}

// Tone sets the modifier's tone field.
func (b *InstructionBuilder) Tone(t Tone) *InstructionBuilder {
	b.modifier = b.modifier.WithTone(t)
	return b
}

// Warmth sets the modifier's warmth field.
func (b *InstructionBuilder) Warmth(w Warmth) *InstructionBuilder {
	b.modifier = b.modifier.WithWarmth(w)
	return b
}

// Format sets the modifier's format field.
func (b *InstructionBuilder) Format(f Format) *InstructionBuilder {
	b.modifier = b.modifier.WithFormat(f)
	return b
}

// Urgency sets the modifier's urgency field.
func (b *InstructionBuilder) Urgency(u Urgency) *InstructionBuilder {
	b.modifier = b.modifier.WithUrgency(u)
	return b
}

// Build produces the instruction.
func (b *InstructionBuilder) Build() Instruction {
	return NewInstruction(b.action, b.subject, b.modifier)
}
