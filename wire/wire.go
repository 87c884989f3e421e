// Package wire defines the interchange encoding for instruction programs.
// Programs are named, content-addressed instruction streams exchanged
// between processes as canonical CBOR records.
package wire

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/chazu/frameisa/isa"
)

// cborEncMode uses canonical mode for deterministic encoding.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("wire: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// ErrHashMismatch indicates a program whose content hash does not match
// its code.
var ErrHashMismatch = errors.New("program hash mismatch")

// Program is a named, packed instruction stream with a content hash. The
// hash covers name, version, and code, so a receiver can verify integrity
// before decoding.
type Program struct {
	Name    string   `cbor:"1,keyasint"`
	Version string   `cbor:"2,keyasint,omitempty"`
	Code    []byte   `cbor:"3,keyasint"`
	Hash    [32]byte `cbor:"4,keyasint"`
}

// NewProgram creates a program from a list of instructions and computes
// its content hash.
func NewProgram(name, version string, instrs []isa.Instruction) *Program {
	code := isa.EncodeAll(instrs)
	return &Program{
		Name:    name,
		Version: version,
		Code:    code,
		Hash:    HashProgram(name, version, code),
	}
}

// HashProgram computes the SHA-256 content hash over name, version, and
// code, each length-prefixed.
func HashProgram(name, version string, code []byte) [32]byte {
	var buf []byte

	writeBytes := func(b []byte) {
		var lenBuf [4]byte
		binary.BigEndian.PutUint32(lenBuf[:], uint32(len(b)))
		buf = append(buf, lenBuf[:]...)
		buf = append(buf, b...)
	}

	// Tag byte for program hash format
	buf = append(buf, 0x01)
	writeBytes([]byte(name))
	writeBytes([]byte(version))
	writeBytes(code)

	return sha256.Sum256(buf)
}

// Verify recomputes the content hash and reports a mismatch as an error.
func (p *Program) Verify() error {
	if HashProgram(p.Name, p.Version, p.Code) != p.Hash {
		return fmt.Errorf("wire: program %q: %w", p.Name, ErrHashMismatch)
	}
	return nil
}

// Instructions decodes the packed code stream.
func (p *Program) Instructions() ([]isa.Instruction, error) {
	instrs, err := isa.ParseAll(p.Code)
	if err != nil {
		return nil, fmt.Errorf("wire: program %q: %w", p.Name, err)
	}
	return instrs, nil
}

// MarshalProgram serializes a Program to CBOR bytes.
func MarshalProgram(p *Program) ([]byte, error) {
	return cborEncMode.Marshal(p)
}

// UnmarshalProgram deserializes a Program from CBOR bytes.
func UnmarshalProgram(data []byte) (*Program, error) {
	var p Program
	if err := cbor.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("wire: unmarshal program: %w", err)
	}
	return &p, nil
}

// Frame is a single extended instruction in transit.
type Frame struct {
	Code []byte `cbor:"1,keyasint"`
}

// NewFrame encodes an extended instruction into a frame.
func NewFrame(ext isa.ExtendedInstruction) *Frame {
	return &Frame{Code: ext.Bytes()}
}

// Decode parses the framed extended instruction.
func (f *Frame) Decode() (isa.ExtendedInstruction, error) {
	return isa.ParseExtended(f.Code)
}

// MarshalFrame serializes a Frame to CBOR bytes.
func MarshalFrame(f *Frame) ([]byte, error) {
	return cborEncMode.Marshal(f)
}

// UnmarshalFrame deserializes a Frame from CBOR bytes.
func UnmarshalFrame(data []byte) (*Frame, error) {
	var f Frame
	if err := cbor.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("wire: unmarshal frame: %w", err)
	}
	return &f, nil
}
