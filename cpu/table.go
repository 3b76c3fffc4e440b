package cpu

// Table maps every opcode byte to its Handler. A nil entry is an
// unimplemented opcode; the zero Table has every opcode unimplemented.
type Table [256]Handler

// NewTable returns a table with every opcode unimplemented.
func NewTable() (table *Table) {
	table = &Table{}
	return
}

// DefaultTable returns a new table with all implemented instructions bound.
func DefaultTable() (table *Table) {
	table = NewTable()

	for reg := range REGISTERS_COUNT {
		table.Register(OP_MOV_R32_IMM32+uint8(reg), MovR32Imm32)
	}
	table.Register(OP_JMP_SHORT, ShortJump)

	return
}

// Register binds a handler to an opcode, replacing any prior binding.
// A nil handler unbinds the opcode.
func (table *Table) Register(opcode uint8, handler Handler) {
	table[opcode] = handler
}

// Lookup returns the handler bound to an opcode.
func (table *Table) Lookup(opcode uint8) (handler Handler, ok bool) {
	handler = table[opcode]
	ok = handler != nil
	return
}

// Implemented returns the number of bound opcodes.
func (table *Table) Implemented() (count int) {
	for _, handler := range table {
		if handler != nil {
			count++
		}
	}
	return
}
