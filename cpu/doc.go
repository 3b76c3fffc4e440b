// Package cpu implements the processor core and assembler for the px86 emulator.
//
// The CPU consists of eight 32-bit general purpose registers (EAX-EDI), an
// instruction pointer (EIP), and a flat byte-addressed memory. Instructions
// are dispatched through a 256 entry Table indexed by the opcode byte; each
// Handler decodes its own operands with Code8, SignCode8 and Code32, and is
// responsible for advancing EIP.
//
// The assembler provides a minimal source language for building memory
// images, supporting macros, labels, equates, and compile-time expression
// evaluation.
package cpu
