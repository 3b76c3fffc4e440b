// Package snapshot records the final state of an emulator run as CBOR.
package snapshot

import (
	"fmt"
	"strings"

	"github.com/fxamacker/cbor/v2"

	"github.com/ezrec/px86/emulator"
)

// Canonical mode, so identical runs encode to identical bytes.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("snapshot: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// Register is a single named register value.
type Register struct {
	Name  string `cbor:"1,keyasint"`
	Value uint32 `cbor:"2,keyasint"`
}

// Snapshot is the halt report and register dump of an emulator.
type Snapshot struct {
	Reason    emulator.HaltReason `cbor:"1,keyasint"`
	Eip       uint32              `cbor:"2,keyasint"`
	Opcode    uint8               `cbor:"3,keyasint"`
	Steps     int                 `cbor:"4,keyasint"`
	Error     string              `cbor:"5,keyasint,omitempty"`
	Registers []Register          `cbor:"6,keyasint"`
}

// Capture records the emulator's halt state and registers.
// A running emulator is captured with reason HALT_NONE.
func Capture(emu *emulator.Emulator) (snap *Snapshot) {
	snap = &Snapshot{
		Eip:   emu.Cpu.Eip,
		Steps: emu.Steps(),
	}

	if halt := emu.Halted(); halt != nil {
		snap.Reason = halt.Reason
		snap.Eip = halt.Eip
		snap.Opcode = halt.Opcode
		snap.Steps = halt.Steps
		if halt.Err != nil {
			snap.Error = halt.Err.Error()
		}
	}

	for name, value := range emu.Cpu.Registers() {
		snap.Registers = append(snap.Registers, Register{Name: name, Value: value})
	}

	return
}

// Register returns the value of a captured register by name, ignoring case.
func (snap *Snapshot) Register(name string) (value uint32, ok bool) {
	for _, reg := range snap.Registers {
		if strings.EqualFold(reg.Name, name) {
			return reg.Value, true
		}
	}

	return
}

// Marshal serializes a Snapshot to CBOR bytes.
func Marshal(snap *Snapshot) ([]byte, error) {
	return cborEncMode.Marshal(snap)
}

// Unmarshal deserializes a Snapshot from CBOR bytes.
func Unmarshal(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := cbor.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("snapshot: unmarshal: %w", err)
	}
	return &snap, nil
}
