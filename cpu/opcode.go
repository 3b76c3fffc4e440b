package cpu

import (
	"fmt"
)

// Opcode byte values with handlers in the default table.
const (
	OP_MOV_R32_IMM32 = uint8(0xB8) // mov r32, imm32 (0xB8 + register)
	OP_JMP_SHORT     = uint8(0xEB) // jmp rel8
)

// Handler implements one opcode.
//
// Execute decodes operands relative to the current EIP, applies the
// instruction, and leaves EIP at the next instruction to execute: by
// increment for sequential instructions, by assignment for control transfers.
// Operands are fully decoded before any state is changed, so a failing
// Execute leaves the CPU untouched.
type Handler interface {
	Execute(cpu *Cpu) error
	Mnemonic() string
}

// Instruction is a named Handler backed by a function.
type Instruction struct {
	Name string
	Exec func(cpu *Cpu) error
}

var _ Handler = (*Instruction)(nil)

func (in *Instruction) Execute(cpu *Cpu) error {
	return in.Exec(cpu)
}

func (in *Instruction) Mnemonic() string {
	return in.Name
}

func (in *Instruction) String() string {
	return fmt.Sprintf("instruction(%v)", in.Name)
}

// MovR32Imm32 loads a 32-bit immediate into the register selected by the
// low 3 bits of the opcode.
var MovR32Imm32 = &Instruction{
	Name: "mov r32, imm32",
	Exec: movR32Imm32,
}

func movR32Imm32(cpu *Cpu) (err error) {
	opcode, err := cpu.Code8(0)
	if err != nil {
		return
	}
	value, err := cpu.Code32(1)
	if err != nil {
		return
	}

	reg := Register((opcode - OP_MOV_R32_IMM32) & 0x7)
	cpu.Register[reg] = value
	cpu.Eip += 5

	return
}

// ShortJump sets EIP to the signed 8-bit displacement plus 2.
//
// The target is absolute, measured as if the jump were at address 0, and is
// not added to the current EIP. A displacement of -2 therefore lands on
// address 0, which the execution loop treats as the end of the program.
var ShortJump = &Instruction{
	Name: "jmp rel8",
	Exec: shortJump,
}

func shortJump(cpu *Cpu) (err error) {
	diff, err := cpu.SignCode8(1)
	if err != nil {
		return
	}

	cpu.Eip = uint32(int32(diff) + 2)

	return
}
