// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"context"
	"errors"
	"log"

	"github.com/ezrec/px86/config"
	"github.com/ezrec/px86/cpu"
	"github.com/ezrec/px86/io"
)

// Emulator state. CPU + dispatch table + run limits.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently loaded program listing, if any.

	// Trace, if set, is called with the EIP and opcode of every fetch.
	Trace func(eip uint32, opcode uint8)

	StepLimit int // Maximum instructions per reset; zero for no limit.
	LoadLimit int // Maximum image bytes loaded; zero for no limit.

	table cpu.Table
	ready bool
	steps int
	halt  *Halt
}

// NewEmulator creates a new emulator from a configuration.
// The dispatch table is copied; a nil table selects cpu.DefaultTable().
func NewEmulator(cfg *config.Config, table *cpu.Table) (emu *Emulator) {
	if cfg == nil {
		cfg = config.Default()
	}

	if table == nil {
		table = cpu.DefaultTable()
	}

	emu = &Emulator{
		Verbose:   cfg.Verbose,
		Cpu:       cpu.NewCpu(cfg.MemorySize, cfg.Eip, cfg.Esp),
		Program:   &cpu.Program{},
		StepLimit: cfg.StepLimit,
		LoadLimit: cfg.LoadLimit,
		table:     *table,
	}

	return
}

// Close the emulator
func (emu *Emulator) Close() (err error) {
	emu.ready = false
	err = emu.Cpu.Close()

	return
}

// Reset the machine, and load a boot image.
// If 'boot' is nil, the assembled Program is loaded instead.
// An empty image is valid, and leaves memory zeroed. On failure the
// emulator refuses to run until a successful reset.
func (emu *Emulator) Reset(boot io.Image) (err error) {
	emu.ready = false
	emu.steps = 0
	emu.halt = nil

	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()

	if boot == nil {
		boot = &io.Rom{Data: emu.Program.Binary()}
	}

	data, err := boot.Load(emu.LoadLimit)
	if err != nil {
		return
	}

	emu.Cpu.Load(data)
	emu.ready = true

	return
}

// Steps returns the instructions completed since the last reset.
func (emu *Emulator) Steps() int {
	return emu.steps
}

// Halted returns the halt state, or nil if the loop may still run.
func (emu *Emulator) Halted() *Halt {
	return emu.halt
}

// LineNo returns the current line number for the executing opcode.
func (emu *Emulator) LineNo() int {
	if emu.Program == nil {
		return 0
	}

	dbg := emu.Program.Debug(emu.Cpu.Eip)
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.LineNo
}

// stop latches the halt state. A non-nil cause is reported as a runtime
// error at 'eip'.
func (emu *Emulator) stop(reason HaltReason, eip uint32, opcode uint8, cause error) (done bool, err error) {
	halt := &Halt{
		Reason: reason,
		Eip:    emu.Cpu.Eip,
		Opcode: opcode,
		Steps:  emu.steps,
	}

	if cause != nil {
		halt.Err = &ErrRuntime{Eip: eip, LineNo: emu.LineNo(), Err: cause}
	}

	if emu.Verbose {
		log.Printf("emulator: halt: %v", halt)
	}

	emu.halt = halt

	done = true
	err = halt.Err
	return
}

// Tick performs a single instruction of the emulator.
// Once halted, every further tick reports the same halt.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.halt != nil {
		return true, emu.halt.Err
	}

	if !emu.ready {
		err = ErrNotReady
		return
	}

	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	eip := emu.Cpu.Eip
	if eip >= emu.Cpu.MemorySize() {
		return emu.stop(HALT_OUT_OF_BOUNDS, eip, 0, &cpu.ErrAddress{Address: int64(eip), Length: 1})
	}

	if emu.StepLimit > 0 && emu.steps >= emu.StepLimit {
		return emu.stop(HALT_STEP_LIMIT, eip, 0, ErrStepLimit)
	}

	opcode, handler, err := emu.Cpu.Fetch(&emu.table)
	if errors.Is(err, cpu.ErrOutOfBounds) {
		return emu.stop(HALT_OUT_OF_BOUNDS, eip, 0, err)
	}

	if emu.Trace != nil {
		emu.Trace(eip, opcode)
	}

	if err != nil {
		return emu.stop(HALT_UNIMPLEMENTED, eip, opcode, err)
	}

	err = emu.Cpu.Execute(opcode, handler)
	if err != nil {
		if errors.Is(err, cpu.ErrOutOfBounds) {
			return emu.stop(HALT_OUT_OF_BOUNDS, eip, opcode, err)
		}
		return emu.stop(HALT_FAULT, eip, opcode, err)
	}

	emu.steps++

	if emu.Cpu.Eip == 0 {
		return emu.stop(HALT_PROGRAM_END, eip, opcode, nil)
	}

	return
}

// Run ticks the emulator until it halts or the context is canceled.
// A program end is reported with a nil error; every other halt carries
// its runtime error.
func (emu *Emulator) Run(ctx context.Context) (halt *Halt, err error) {
	for {
		if emu.halt == nil && emu.ready {
			if cerr := ctx.Err(); cerr != nil {
				emu.stop(HALT_CANCELED, emu.Cpu.Eip, 0, cerr)
			}
		}

		var done bool
		done, err = emu.Tick()
		if done {
			halt = emu.halt
			return
		}
		if err != nil {
			return
		}
	}
}
