package isa

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"
)

// ---------------------------------------------------------------------------
// Extended instruction format
// ---------------------------------------------------------------------------
//
// Extends the base 6-byte opcode with a typed argument payload:
//
//	[BASE:6 bytes][PAYLOAD_TYPE:1 byte][PAYLOAD:N bytes]
//
// Payload types:
//   - 0x00: none (base instruction only)
//   - 0x01: calc arguments (17 bytes: [OP:1][A:8][B:8])
//   - 0x02: time arguments (14 bytes: [REF:8][DELTA:4][UNIT:1][TZ:1])
//
// The envelope makes opcodes self-contained: all data needed for execution
// travels with the instruction.

// PayloadType is the one-byte tag selecting a payload shape. Each tag has
// a fixed payload size; no other size is valid for a given tag.
type PayloadType byte

const (
	PayloadNone PayloadType = 0x00 // no payload
	PayloadCalc PayloadType = 0x01 // arithmetic arguments
	PayloadTime PayloadType = 0x02 // temporal arguments
)

// Fixed payload sizes per type.
const (
	CalcPayloadSize = 17 // [OP:1][A:8][B:8]
	TimePayloadSize = 14 // [REF:8][DELTA:4][UNIT:1][TZ:1]
)

// PayloadTypeFromByte decodes a payload type tag. The second result is
// false for unrecognized tags.
func PayloadTypeFromByte(b byte) (PayloadType, bool) {
	switch t := PayloadType(b); t {
	case PayloadNone, PayloadCalc, PayloadTime:
		return t, true
	}
	return 0, false
}

// Size returns the payload size in bytes for this type.
func (t PayloadType) Size() int {
	switch t {
	case PayloadCalc:
		return CalcPayloadSize
	case PayloadTime:
		return TimePayloadSize
	}
	return 0
}

// TotalSize returns the full extended instruction size for this type
// (6-byte base + 1 type byte + payload).
func (t PayloadType) TotalSize() int {
	return InstructionSize + 1 + t.Size()
}

// Payload is an argument payload attached to an extended instruction.
// Implemented by CalcPayload and TimePayload; a nil Payload means none.
type Payload interface {
	Type() PayloadType

	// appendTo appends the payload body (without the type byte).
	appendTo(dst []byte) []byte
}

// ---------------------------------------------------------------------------
// Calc payload
// ---------------------------------------------------------------------------

// CalcOp is an arithmetic operator code. Binary operators use their ASCII
// punctuation value; sqrt uses 'S'.
type CalcOp byte

const (
	OpAdd  CalcOp = '+'
	OpSub  CalcOp = '-'
	OpMul  CalcOp = '*'
	OpDiv  CalcOp = '/'
	OpMod  CalcOp = '%'
	OpPow  CalcOp = '^'
	OpSqrt CalcOp = 'S'
)

// CalcOpFromByte decodes an operator byte. The second result is false for
// unrecognized operators.
func CalcOpFromByte(b byte) (CalcOp, bool) {
	switch op := CalcOp(b); op {
	case OpAdd, OpSub, OpMul, OpDiv, OpMod, OpPow, OpSqrt:
		return op, true
	}
	return 0, false
}

// Symbol returns the display symbol for this operator.
func (op CalcOp) Symbol() string {
	if op == OpSqrt {
		return "sqrt"
	}
	return string(byte(op))
}

// IsUnary reports whether this operator takes a single operand.
func (op CalcOp) IsUnary() bool {
	return op == OpSqrt
}

// CalcPayload carries arithmetic arguments: an operator and two IEEE-754
// double operands. For unary operators B is present on the wire but unused.
type CalcPayload struct {
	Op CalcOp
	A  float64
	B  float64
}

// NewCalcPayload creates a binary calc payload.
func NewCalcPayload(op CalcOp, a, b float64) CalcPayload {
	return CalcPayload{Op: op, A: a, B: b}
}

// UnaryCalcPayload creates a unary calc payload (B conventionally zero).
func UnaryCalcPayload(op CalcOp, a float64) CalcPayload {
	return CalcPayload{Op: op, A: a}
}

// Type implements Payload.
func (p CalcPayload) Type() PayloadType {
	return PayloadCalc
}

func (p CalcPayload) appendTo(dst []byte) []byte {
	b := p.Bytes()
	return append(dst, b[:]...)
}

// Bytes encodes the payload body: [OP:1][A:8][B:8], operands big-endian.
func (p CalcPayload) Bytes() [CalcPayloadSize]byte {
	var b [CalcPayloadSize]byte
	b[0] = byte(p.Op)
	binary.BigEndian.PutUint64(b[1:9], math.Float64bits(p.A))
	binary.BigEndian.PutUint64(b[9:17], math.Float64bits(p.B))
	return b
}

// ParseCalcPayload decodes a calc payload body.
func ParseCalcPayload(b []byte) (CalcPayload, error) {
	if len(b) < CalcPayloadSize {
		return CalcPayload{}, &LengthError{Actual: len(b), Expected: CalcPayloadSize}
	}
	op, ok := CalcOpFromByte(b[0])
	if !ok {
		return CalcPayload{}, &OpcodeError{Input: fmt.Sprintf("unknown calc operator: 0x%02X", b[0])}
	}
	return CalcPayload{
		Op: op,
		A:  math.Float64frombits(binary.BigEndian.Uint64(b[1:9])),
		B:  math.Float64frombits(binary.BigEndian.Uint64(b[9:17])),
	}, nil
}

// String renders the expression, e.g. "15 + 7" or "sqrt(144)".
func (p CalcPayload) String() string {
	if p.Op.IsUnary() {
		return fmt.Sprintf("%s(%v)", p.Op.Symbol(), p.A)
	}
	return fmt.Sprintf("%v %s %v", p.A, p.Op.Symbol(), p.B)
}

// ---------------------------------------------------------------------------
// Time payload
// ---------------------------------------------------------------------------

// TimeUnit is the unit of a time delta.
type TimeUnit byte

const (
	UnitSecond TimeUnit = iota
	UnitMinute
	UnitHour
	UnitDay
	UnitWeek
	UnitMonth // ~30 days
	UnitYear  // 365 days
)

var timeUnitSeconds = [7]int64{1, 60, 3600, 86400, 604800, 2592000, 31536000}
var timeUnitNames = [7]string{"second", "minute", "hour", "day", "week", "month", "year"}

// TimeUnitFromByte decodes a unit byte. The second result is false for
// values outside 0-6.
func TimeUnitFromByte(b byte) (TimeUnit, bool) {
	if b > byte(UnitYear) {
		return 0, false
	}
	return TimeUnit(b), true
}

// Seconds returns the fixed seconds-per-unit constant.
func (u TimeUnit) Seconds() int64 {
	return timeUnitSeconds[u%7]
}

// Name returns the unit's display name.
func (u TimeUnit) Name() string {
	return timeUnitNames[u%7]
}

// TimePayload carries temporal arguments: a reference timestamp, a signed
// delta in some unit, and a timezone offset in hours.
type TimePayload struct {
	Reference int64    // Unix epoch seconds
	Delta     int32    // positive = future, negative = past
	Unit      TimeUnit // unit of Delta
	TZOffset  int8     // timezone offset in hours (-12 to +14)
}

// TimePayloadNow creates a time payload referencing the current time.
func TimePayloadNow() TimePayload {
	return TimePayloadAt(time.Now().Unix())
}

// TimePayloadAt creates a time payload with a specific reference.
func TimePayloadAt(reference int64) TimePayload {
	return TimePayload{Reference: reference, Unit: UnitSecond}
}

// TimePayloadDelta creates a time payload offset from a reference.
func TimePayloadDelta(reference int64, delta int32, unit TimeUnit) TimePayload {
	return TimePayload{Reference: reference, Delta: delta, Unit: unit}
}

// WithTZ returns a copy with the timezone offset set.
func (p TimePayload) WithTZ(offset int8) TimePayload {
	p.TZOffset = offset
	return p
}

// TargetTimestamp computes reference + delta*unit + tz, in epoch seconds.
func (p TimePayload) TargetTimestamp() int64 {
	return p.Reference + int64(p.Delta)*p.Unit.Seconds() + int64(p.TZOffset)*3600
}

// Type implements Payload.
func (p TimePayload) Type() PayloadType {
	return PayloadTime
}

func (p TimePayload) appendTo(dst []byte) []byte {
	b := p.Bytes()
	return append(dst, b[:]...)
}

// Bytes encodes the payload body: [REF:8][DELTA:4][UNIT:1][TZ:1],
// integers big-endian.
func (p TimePayload) Bytes() [TimePayloadSize]byte {
	var b [TimePayloadSize]byte
	binary.BigEndian.PutUint64(b[0:8], uint64(p.Reference))
	binary.BigEndian.PutUint32(b[8:12], uint32(p.Delta))
	b[12] = byte(p.Unit)
	b[13] = byte(p.TZOffset)
	return b
}

// ParseTimePayload decodes a time payload body.
func ParseTimePayload(b []byte) (TimePayload, error) {
	if len(b) < TimePayloadSize {
		return TimePayload{}, &LengthError{Actual: len(b), Expected: TimePayloadSize}
	}
	unit, ok := TimeUnitFromByte(b[12])
	if !ok {
		return TimePayload{}, &OpcodeError{Input: fmt.Sprintf("unknown time unit: 0x%02X", b[12])}
	}
	return TimePayload{
		Reference: int64(binary.BigEndian.Uint64(b[0:8])),
		Delta:     int32(binary.BigEndian.Uint32(b[8:12])),
		Unit:      unit,
		TZOffset:  int8(b[13]),
	}, nil
}

// ---------------------------------------------------------------------------
// ExtendedInstruction
// ---------------------------------------------------------------------------

// ExtendedInstruction wraps a base instruction with an optional typed
// argument payload.
//
// Wire format:
//
//	[BASE:6 bytes][PAYLOAD_TYPE:1 byte][PAYLOAD:N bytes]
type ExtendedInstruction struct {
	Base    Instruction
	Payload Payload // nil means no payload
}

// NewExtended creates an extended instruction with no payload.
func NewExtended(base Instruction) ExtendedInstruction {
	return ExtendedInstruction{Base: base}
}

// WithCalc creates an extended instruction carrying calc arguments.
func WithCalc(base Instruction, calc CalcPayload) ExtendedInstruction {
	return ExtendedInstruction{Base: base, Payload: calc}
}

// WithTime creates an extended instruction carrying time arguments.
func WithTime(base Instruction, t TimePayload) ExtendedInstruction {
	return ExtendedInstruction{Base: base, Payload: t}
}

// PayloadType returns the tag for the attached payload.
func (e ExtendedInstruction) PayloadType() PayloadType {
	if e.Payload == nil {
		return PayloadNone
	}
	return e.Payload.Type()
}

// ByteSize returns the total encoded size.
func (e ExtendedInstruction) ByteSize() int {
	return e.PayloadType().TotalSize()
}

// Bytes encodes the extended instruction.
func (e ExtendedInstruction) Bytes() []byte {
	out := make([]byte, 0, e.ByteSize())
	base := e.Base.Bytes()
	out = append(out, base[:]...)
	out = append(out, byte(e.PayloadType()))
	if e.Payload != nil {
		out = e.Payload.appendTo(out)
	}
	return out
}

// ParseExtended decodes an extended instruction. The buffer must contain
// at least the 7-byte header; the payload length requirement is derived
// from the type byte.
func ParseExtended(b []byte) (ExtendedInstruction, error) {
	if len(b) < InstructionSize+1 {
		return ExtendedInstruction{}, &LengthError{Actual: len(b), Expected: InstructionSize + 1}
	}
	base, err := ParseOne(b[:InstructionSize])
	if err != nil {
		return ExtendedInstruction{}, err
	}
	ptype, ok := PayloadTypeFromByte(b[InstructionSize])
	if !ok {
		return ExtendedInstruction{}, &OpcodeError{
			Input: fmt.Sprintf("unknown payload type: 0x%02X", b[InstructionSize]),
		}
	}
	if len(b) < ptype.TotalSize() {
		return ExtendedInstruction{}, &LengthError{Actual: len(b), Expected: ptype.TotalSize()}
	}

	body := b[InstructionSize+1:]
	switch ptype {
	case PayloadCalc:
		calc, err := ParseCalcPayload(body)
		if err != nil {
			return ExtendedInstruction{}, err
		}
		return WithCalc(base, calc), nil
	case PayloadTime:
		t, err := ParseTimePayload(body)
		if err != nil {
			return ExtendedInstruction{}, err
		}
		return WithTime(base, t), nil
	}
	return NewExtended(base), nil
}

// AsCalc returns the calc payload when one is attached.
func (e ExtendedInstruction) AsCalc() (CalcPayload, bool) {
	calc, ok := e.Payload.(CalcPayload)
	return calc, ok
}

// AsTime returns the time payload when one is attached.
func (e ExtendedInstruction) AsTime() (TimePayload, bool) {
	t, ok := e.Payload.(TimePayload)
	return t, ok
}

// String implements the Stringer interface.
func (e ExtendedInstruction) String() string {
	switch p := e.Payload.(type) {
	case CalcPayload:
		return fmt.Sprintf("%s + %s", e.Base, p)
	case TimePayload:
		return fmt.Sprintf("%s @ %d", e.Base, p.TargetTimestamp())
	}
	return e.Base.String()
}
