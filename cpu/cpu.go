package cpu

import (
	"fmt"
	"iter"
	"log"

	"github.com/ezrec/px86/internal"
)

// Cpu is the machine state of the emulated 32-bit processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Register [REGISTERS_COUNT]uint32 // General purpose register bank.
	Eip      uint32                  // Next instruction byte to fetch.
	Memory   []byte                  // Flat memory, addressed from 0.

	initialEip uint32
	initialEsp uint32
}

// NewCpu creates a CPU with 'size' bytes of zeroed memory, the instruction
// pointer at 'eip', and ESP set to 'esp'. All other registers are zero.
func NewCpu(size uint32, eip uint32, esp uint32) (cpu *Cpu) {
	cpu = &Cpu{
		Memory:     make([]byte, size),
		initialEip: eip,
		initialEsp: esp,
	}

	cpu.Eip = eip
	cpu.Register[ESP] = esp

	return
}

// Close releases the CPU memory. Closing twice is harmless.
func (cpu *Cpu) Close() (err error) {
	cpu.Memory = nil

	return
}

// Reset restores the creation-time registers and zeros memory.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset eip=%08x esp=%08x", cpu.initialEip, cpu.initialEsp)
	}

	clear(cpu.Register[:])
	clear(cpu.Memory)
	cpu.Eip = cpu.initialEip
	cpu.Register[ESP] = cpu.initialEsp
}

// Load copies an image into memory starting at address 0.
// The image is truncated at the end of memory; the number of bytes copied
// is returned.
func (cpu *Cpu) Load(image []byte) (count int) {
	count = copy(cpu.Memory, image)

	if cpu.Verbose {
		log.Printf("cpu: loaded %d of %d bytes", count, len(image))
	}

	return
}

// MemorySize returns the size of memory in bytes.
func (cpu *Cpu) MemorySize() uint32 {
	return uint32(len(cpu.Memory))
}

// Registers returns an iterator over the register names and values,
// general purpose registers first, followed by EIP.
func (cpu *Cpu) Registers() iter.Seq2[string, uint32] {
	gprs := func(yield func(string, uint32) bool) {
		for n, value := range cpu.Register {
			if !yield(Register(n).String(), value) {
				return
			}
		}
	}

	return internal.IterSeq2Concat(gprs, internal.IterSeq2Single("EIP", cpu.Eip))
}

// String returns the current register dump, one register per line.
func (cpu *Cpu) String() (text string) {
	for name, value := range cpu.Registers() {
		text += fmt.Sprintf("%s = %08x\n", name, value)
	}

	return
}

// Fetch reads the opcode at EIP and looks up its handler.
// The opcode is returned whenever it could be read, even if unimplemented.
func (cpu *Cpu) Fetch(table *Table) (opcode uint8, handler Handler, err error) {
	opcode, err = cpu.Code8(0)
	if err != nil {
		return
	}

	handler, ok := table.Lookup(opcode)
	if !ok {
		err = ErrOpcode(opcode)
		return
	}

	return
}

// Execute runs the handler for the opcode at EIP.
// Handler failures are wrapped with the instruction mnemonic.
func (cpu *Cpu) Execute(opcode uint8, handler Handler) (err error) {
	if cpu.Verbose {
		log.Printf("%08x: %02x %v", cpu.Eip, opcode, handler.Mnemonic())
	}

	err = handler.Execute(cpu)
	if err != nil {
		err = &ErrExecute{Mnemonic: handler.Mnemonic(), Err: err}
		return
	}

	return
}
