package cpu

import (
	"iter"
)

// Opcode represents a line of assembled code with its source location and generated bytes.
type Opcode struct {
	LineNo    int
	Ip        int
	Words     []string
	Bytes     []byte
	LinkLabel string
}

type Program struct {
	Opcodes []Opcode
}

type Debug struct {
	*Opcode
	Index int
}

// Debug returns the opcode covering the address, and the byte index within it.
func (prog *Program) Debug(ip uint32) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if ip >= uint32(op.Ip) && ip < uint32(op.Ip+len(op.Bytes)) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  int(ip - uint32(op.Ip)),
			}
			break
		}
	}

	return
}

// Binary returns the memory image of the program, starting at address 0.
// Gaps between opcodes are zero filled.
func (prog *Program) Binary() (bins []byte) {
	for ip, code := range prog.Bytes() {
		for len(bins) < int(ip) {
			bins = append(bins, 0)
		}
		bins = append(bins, code)
	}

	return
}

// Bytes returns an iterator over every assembled address and byte.
func (prog *Program) Bytes() iter.Seq2[uint32, byte] {
	return func(yield func(ip uint32, code byte) bool) {
		for _, op := range prog.Opcodes {
			ip := uint32(op.Ip)
			for n, code := range op.Bytes {
				if !yield(ip+uint32(n), code) {
					return
				}
			}
		}
	}
}
