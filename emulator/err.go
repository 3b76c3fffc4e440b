package emulator

import (
	"errors"

	"github.com/ezrec/px86/translate"
)

var f = translate.From

var (
	ErrNotReady  = errors.New(f("emulator not reset"))
	ErrStepLimit = errors.New(f("step limit reached"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Eip    uint32
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	if err.LineNo > 0 {
		return f("line %d eip %08x %v", err.LineNo, err.Eip, err.Err)
	}
	return f("eip %08x %v", err.Eip, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
