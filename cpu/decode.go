package cpu

// address returns EIP+offset, or ErrOutOfBounds if 'length' bytes starting
// there do not fit in memory.
func (cpu *Cpu) address(offset int, length int) (addr uint32, err error) {
	at := int64(cpu.Eip) + int64(offset)
	if at < 0 || at+int64(length) > int64(len(cpu.Memory)) {
		err = &ErrAddress{Address: at, Length: length}
		return
	}

	addr = uint32(at)
	return
}

// Code8 returns the unsigned byte at EIP+offset.
func (cpu *Cpu) Code8(offset int) (value uint8, err error) {
	addr, err := cpu.address(offset, 1)
	if err != nil {
		return
	}

	value = cpu.Memory[addr]
	return
}

// SignCode8 returns the byte at EIP+offset as a two's complement value.
func (cpu *Cpu) SignCode8(offset int) (value int8, err error) {
	code, err := cpu.Code8(offset)
	if err != nil {
		return
	}

	value = int8(code)
	return
}

// Code32 returns the little-endian 32-bit value at EIP+offset.
func (cpu *Cpu) Code32(offset int) (value uint32, err error) {
	addr, err := cpu.address(offset, 4)
	if err != nil {
		return
	}

	for n := range 4 {
		value |= uint32(cpu.Memory[addr+uint32(n)]) << (n * 8)
	}

	return
}
