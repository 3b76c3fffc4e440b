package cpu

import (
	"strings"
)

// Register is a general purpose register index.
type Register int

// Register encodings, in the order of the low 3 bits of `mov r32, imm32`.
//
//go:generate go tool stringer -linecomment -type=Register
const (
	EAX = Register(0) // EAX
	ECX = Register(1) // ECX
	EDX = Register(2) // EDX
	EBX = Register(3) // EBX
	ESP = Register(4) // ESP
	EBP = Register(5) // EBP
	ESI = Register(6) // ESI
	EDI = Register(7) // EDI

	REGISTERS_COUNT = 8
)

// RegisterByName looks up a register by its (case-insensitive) name.
func RegisterByName(name string) (reg Register, ok bool) {
	for n := range REGISTERS_COUNT {
		if strings.EqualFold(Register(n).String(), name) {
			reg = Register(n)
			ok = true
			return
		}
	}

	return
}
