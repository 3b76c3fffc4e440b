package cpu

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(prog.Opcodes))
	assert.Equal(0, len(prog.Binary()))

	assert.Equal("0", asm.Equate["LINENO"])
	assert.Equal("0", asm.Equate["IP"])
}

func opEqual(t *testing.T, expected, opcodes []Opcode) {
	assert := assert.New(t)

	assert.Equal(len(expected), len(opcodes))
	if len(expected) == len(opcodes) {
		for n := range len(expected) {
			assert.Equal(expected[n], opcodes[n])
		}
	}
}

func TestAssemblerMov(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"mov eax 0",
		"mov ecx, 0x12345678 ; commas are optional",
		"MOV edi -1",
		"mov ebx '*'",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	expected := []Opcode{
		{1, 0, []string{"mov", "eax", "0"}, []byte{0xB8, 0, 0, 0, 0}, ""},
		{2, 5, []string{"mov", "ecx", "0x12345678"}, []byte{0xB9, 0x78, 0x56, 0x34, 0x12}, ""},
		{3, 10, []string{"MOV", "edi", "-1"}, []byte{0xBF, 0xff, 0xff, 0xff, 0xff}, ""},
		{4, 15, []string{"mov", "ebx", "42"}, []byte{0xBB, 42, 0, 0, 0}, ""},
	}

	opEqual(t, expected, prog.Opcodes)
}

func TestAssemblerJmp(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"start:",
		"mov ebx 0x2c",
		"here: jmp here",
		"jmp start",
		"jmp forward",
		"db 0x90",
		"forward:",
		"jmp 0x20",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	assert.Equal(map[string]int{"start": 0, "here": 5, "forward": 12}, asm.Label)

	expected := []Opcode{
		{2, 0, []string{"mov", "ebx", "0x2c"}, []byte{0xBB, 0x2c, 0, 0, 0}, ""},
		{3, 5, []string{"jmp", "here"}, []byte{0xEB, 0x03}, "here"},
		{4, 7, []string{"jmp", "start"}, []byte{0xEB, 0xfe}, "start"},
		{5, 9, []string{"jmp", "forward"}, []byte{0xEB, 0x0a}, "forward"},
		{6, 11, []string{"db", "0x90"}, []byte{0x90}, ""},
		{8, 12, []string{"jmp", "0x20"}, []byte{0xEB, 0x1e}, ""},
	}

	opEqual(t, expected, prog.Opcodes)

	assert.Equal([]byte{
		0xBB, 0x2c, 0, 0, 0,
		0xEB, 0x03,
		0xEB, 0xfe,
		0xEB, 0x0a,
		0x90,
		0xEB, 0x1e,
	}, prog.Binary())
}

func TestAssemblerEqu(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("BOOT", "0x7c00")

	program := []string{
		".equ CONST_10 0x10",
		"mov eax CONST_10",
		"mov ecx $(CONST_10 + CONST_10)",
		".equ ACC edx",
		"mov ACC $(BOOT + 1)",
		"mov ebx $(LINENO * 8)",
		"mov esi $(IP)",
		"jmp $(IP)",
		"jmp 0",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	assert.Equal([]byte{
		0xB8, 0x10, 0, 0, 0,
		0xB9, 0x20, 0, 0, 0,
		0xBA, 0x01, 0x7c, 0, 0,
		0xBB, 48, 0, 0, 0,
		0xBE, 20, 0, 0, 0,
		0xEB, 23,
		0xEB, 0xfe,
	}, prog.Binary())
}

func TestAssemblerMacro(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		".macro SET2 ra rb value",
		"mov ra value",
		"mov rb $(value + 1)",
		".endm",
		".macro SPIN",
		"@loop: jmp @loop",
		".endm",
		"SET2 eax ecx 0x10",
		"SPIN",
		"SPIN",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	assert.Equal([]byte{
		0xB8, 0x10, 0, 0, 0,
		0xB9, 0x11, 0, 0, 0,
		0xEB, 0x08,
		0xEB, 0x0a,
	}, prog.Binary())
	assert.Equal(map[string]int{"SPIN.1.loop": 10, "SPIN.2.loop": 12}, asm.Label)
	assert.Equal(2, len(asm.Macro))
}

func TestAssemblerDb(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader("db 0 0xff -1 -128 'A' '\\n'\n"))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	assert.Equal([]byte{0, 0xff, 0xff, 0x80, 'A', '\n'}, prog.Binary())
}

func TestAssemblerErrSyntax(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	// Various syntax errors
	table := [](struct {
		prog string
		line int
	}){
		{"DUP:\nDUP:\n", 2},
		{"mov eax nothing", 1},
		{"mov eax $(\"aaa\")", 1},
		{"mov eax $(more(\"aaa\"))", 1},
		{"mov eax $(0x10000000000000000)", 1},
		{"mov eax 0x100000000", 1},
		{"mov", 1},
		{"mov eax", 1},
		{"mov eax 1 2", 1},
		{"mov r0 1", 1},
		{"jmp", 1},
		{"jmp all over", 1},
		{"\njmp nowhere", 2},
		{"jmp 0x200", 1},
		{"db", 1},
		{"db 0x100", 1},
		{"db -129", 1},
		{"nop", 1},
		{".equ", 1},
		{".equ A", 1},
		{".equ A 1\n.equ A 2\n", 2},
		{".macro\n", 1},
		{".macro A B C\n.endm\nA 1\n", 3},
		{".macro A B\nB eax 1\n.endm\nA mov\nA invalid\n", 5},
		{".macro A B\n.macro C\n.endm\n.endm", 2},
		{".macro A B\n.endm\n.macro A\n.endm\n", 3},
		{".macro A B\n.endm\n.endm\n", 3},
		{".macro A\nmov eax 1\n", 2},
	}

	for _, entry := range table {
		_, err := asm.Parse(strings.NewReader(entry.prog))
		var se *ErrSyntax
		assert.NotNil(err, entry.prog)
		if err != nil {
			assert.True(errors.As(err, &se), entry.prog)
			assert.Equal(entry.line, se.LineNo, entry.prog)
		}
	}
}

func TestAssemblerErrJumpRange(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"jmp away",
		"db " + strings.Repeat("0 ", 200),
		"away:",
	}

	_, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	var jr *ErrJumpRange
	assert.True(errors.As(err, &jr))
	if jr != nil {
		assert.Equal(0, jr.From)
		assert.Equal(int64(202), jr.Target)
	}

	var se *ErrSyntax
	assert.True(errors.As(err, &se))
	if se != nil {
		assert.Equal(1, se.LineNo)
	}
}

func TestAssemblerJmpRange(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	// Reachable targets are -126 through 129, wherever the jump is.
	prog, err := asm.Parse(strings.NewReader("db 0 0 0 0\njmp 129\njmp -126\njmp 0\n"))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal([]byte{0, 0, 0, 0, 0xEB, 0x7f, 0xEB, 0x80, 0xEB, 0xfe}, prog.Binary())

	for _, target := range []string{"130", "-127"} {
		_, err = asm.Parse(strings.NewReader("jmp " + target))
		var jr *ErrJumpRange
		assert.True(errors.As(err, &jr), target)
	}
}
