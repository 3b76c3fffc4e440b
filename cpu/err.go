package cpu

import (
	"errors"

	"github.com/ezrec/px86/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrOutOfBounds = errors.New(f("out of bounds"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrMacroSyntax        = errors.New(f(".macro syntax"))
	ErrMacroNesting       = errors.New(f(".macro in .macro prohibited"))
	ErrMacroDuplicate     = errors.New(f(".macro duplicated"))
	ErrMacroLonely        = errors.New(f(".macro without .endm"))
	ErrMacroLonelyEndm    = errors.New(f(".endm without .macro"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeMissing      = errors.New(f("opcode missing"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrRegisterInvalid    = errors.New(f("register invalid"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
	ErrByteRange          = errors.New(f("byte out of range"))
)

// ErrAddress is an access outside of memory. It matches ErrOutOfBounds.
type ErrAddress struct {
	Address int64
	Length  int
}

func (err *ErrAddress) Error() string {
	return f("%d byte access at 0x%x out of bounds", err.Length, err.Address)
}

func (err *ErrAddress) Is(target error) bool {
	return target == ErrOutOfBounds
}

// ErrOpcode is an opcode with no handler bound.
type ErrOpcode uint8

func (eo ErrOpcode) Error() string {
	return f("opcode 0x%02x not implemented", uint8(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrExecute is a failure inside an instruction handler.
type ErrExecute struct {
	Mnemonic string
	Err      error
}

func (err *ErrExecute) Error() string {
	return f("%v: %v", err.Mnemonic, err.Err)
}

func (err *ErrExecute) Unwrap() error {
	return err.Err
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

// ErrJumpRange is a short jump to a target outside of -126 to 129.
type ErrJumpRange struct {
	From   int
	Target int64
}

func (err *ErrJumpRange) Error() string {
	return f("jump from 0x%x to 0x%x out of short jump range", err.From, err.Target)
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseCharacter string

func (err ErrParseCharacter) Error() string {
	return f("'%v' is not a character", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrMacro struct {
	Macro string
	Line  int
	Err   error
}

func (err *ErrMacro) Error() string {
	return f("macro %v line %v %v", err.Macro, err.Line, err.Err.Error())
}

func (err *ErrMacro) Unwrap() error {
	return err.Err
}
