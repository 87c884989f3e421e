// Package isa defines the Frame instruction set: a fixed-width 6-byte
// opcode format for AI-model output decisions.
//
// This package contains:
//   - Action, Subject, and Modifier code spaces (16 bits each)
//   - The 6-byte Instruction codec (big-endian, ACT+SUBJ+MOD)
//   - The extended instruction envelope with typed argument payloads
//   - A fluent builder and a stream disassembler
package isa
