package emulator

// HaltReason is the cause of an execution loop stop.
type HaltReason int

//go:generate go tool stringer -linecomment -type=HaltReason
const (
	HALT_NONE          = HaltReason(0) // running
	HALT_PROGRAM_END   = HaltReason(1) // end of program
	HALT_OUT_OF_BOUNDS = HaltReason(2) // out of bounds
	HALT_UNIMPLEMENTED = HaltReason(3) // not implemented
	HALT_FAULT         = HaltReason(4) // fault
	HALT_STEP_LIMIT    = HaltReason(5) // step limit
	HALT_CANCELED      = HaltReason(6) // canceled
)

// Halt describes a stopped execution loop.
type Halt struct {
	Reason HaltReason // Why the loop stopped.
	Eip    uint32     // EIP at the halt.
	Opcode uint8      // Last opcode fetched. Identifies the opcode for HALT_UNIMPLEMENTED.
	Steps  int        // Instructions completed since reset.
	Err    error      // Failure detail; nil for HALT_PROGRAM_END.
}

func (halt *Halt) String() string {
	switch halt.Reason {
	case HALT_UNIMPLEMENTED:
		return f("%v: %02x at %08x after %d steps", halt.Reason, halt.Opcode, halt.Eip, halt.Steps)
	default:
		return f("%v at %08x after %d steps", halt.Reason, halt.Eip, halt.Steps)
	}
}
