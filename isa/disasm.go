package isa

import (
	"fmt"
	"strings"
)

// ---------------------------------------------------------------------------
// Disassembly
// ---------------------------------------------------------------------------

// Namer resolves display names for codes. The disassembler consults it
// before the built-in catalog, so deployments can overlay their own names
// for otherwise-unknown code points.
type Namer interface {
	ActionName(Action) (string, bool)
	SubjectName(Subject) (string, bool)
}

// Disassemble returns a listing of a packed instruction stream, one line
// per instruction with its byte offset, compact opcode form, and resolved
// names.
func Disassemble(code []byte) (string, error) {
	return DisassembleWith(code, nil)
}

// DisassembleWith is Disassemble with a name overlay. A nil Namer uses the
// built-in catalogs only.
func DisassembleWith(code []byte, names Namer) (string, error) {
	instrs, err := ParseAll(code)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for n, instr := range instrs {
		if n > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%04d  %s  %s %s",
			n*InstructionSize,
			instr.OpcodeString(),
			resolveActionName(instr.Action, names),
			resolveSubjectName(instr.Subject, names))
	}
	return sb.String(), nil
}

func resolveActionName(a Action, names Namer) string {
	if names != nil {
		if name, ok := names.ActionName(a); ok {
			return name
		}
	}
	return a.Name()
}

func resolveSubjectName(s Subject, names Namer) string {
	if names != nil {
		if name, ok := names.SubjectName(s); ok {
			return name
		}
	}
	if id, ok := s.RAGDocID(); ok {
		return fmt.Sprintf("RAG_REF[0x%03X]", id)
	}
	if id, ok := s.TRMModelID(); ok {
		return fmt.Sprintf("TRM_REF[%d]", id)
	}
	return s.Name()
}
