package io

import (
	"bytes"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
)

func TestRom(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{Data: []byte{0xEB, 0xFE, 0x90}}

	data, err := rom.Load(0)
	assert.NoError(err)
	assert.Equal([]byte{0xEB, 0xFE, 0x90}, data)

	data, err = rom.Load(2)
	assert.NoError(err)
	assert.Equal([]byte{0xEB, 0xFE}, data)

	// Loaded data is a copy.
	data[0] = 0
	assert.Equal(uint8(0xEB), rom.Data[0])

	_, err = (&Rom{}).Load(BOOT_SECTOR_SIZE)
	assert.ErrorIs(err, ErrImageLoad)
	assert.ErrorIs(err, ErrImageEmpty)

	// Zero length data is a valid, empty image.
	data, err = (&Rom{Data: []byte{}}).Load(BOOT_SECTOR_SIZE)
	assert.NoError(err)
	assert.Equal(0, len(data))
}

func TestTape(t *testing.T) {
	assert := assert.New(t)

	input := bytes.Repeat([]byte{0x90}, BOOT_SECTOR_SIZE+10)
	reader := bytes.NewReader(input)
	tape := &Tape{Input: reader}

	data, err := tape.Load(BOOT_SECTOR_SIZE)
	assert.NoError(err)
	assert.Equal(BOOT_SECTOR_SIZE, len(data))
	assert.Equal(10, reader.Len())

	_, err = (&Tape{}).Load(0)
	assert.ErrorIs(err, ErrImageLoad)
}

type failReader struct{}

var errFail = errors.New("read failure")

func (failReader) Read(p []byte) (int, error) {
	return 0, errFail
}

func TestTapeError(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: failReader{}}
	data, err := tape.Load(0)
	assert.Nil(data)
	assert.ErrorIs(err, ErrImageLoad)
	assert.ErrorIs(err, errFail)

	var le *ErrLoad
	assert.True(errors.As(err, &le))
	assert.Equal("tape", le.Source)
}

func TestFile(t *testing.T) {
	assert := assert.New(t)

	fsys := fstest.MapFS{
		"boot.bin":  &fstest.MapFile{Data: []byte{0xBB, 0x2C, 0, 0, 0, 0xEB, 0xFE}},
		"large.bin": &fstest.MapFile{Data: make([]byte, 4*BOOT_SECTOR_SIZE)},
		"empty.bin": &fstest.MapFile{Data: []byte{}},
	}

	file := &File{Path: "boot.bin", FS: fsys}
	data, err := file.Load(BOOT_SECTOR_SIZE)
	assert.NoError(err)
	assert.Equal([]byte{0xBB, 0x2C, 0, 0, 0, 0xEB, 0xFE}, data)

	file = &File{Path: "large.bin", FS: fsys}
	data, err = file.Load(BOOT_SECTOR_SIZE)
	assert.NoError(err)
	assert.Equal(BOOT_SECTOR_SIZE, len(data))

	data, err = file.Load(0)
	assert.NoError(err)
	assert.Equal(4*BOOT_SECTOR_SIZE, len(data))

	file = &File{Path: "empty.bin", FS: fsys}
	data, err = file.Load(BOOT_SECTOR_SIZE)
	assert.NoError(err)
	assert.Equal(0, len(data))

	file = &File{Path: "missing.bin", FS: fsys}
	data, err = file.Load(BOOT_SECTOR_SIZE)
	assert.Nil(data)
	assert.ErrorIs(err, ErrImageLoad)

	var le *ErrLoad
	assert.True(errors.As(err, &le))
	assert.Equal("missing.bin", le.Source)

	_, err = (&File{}).Load(0)
	assert.ErrorIs(err, ErrImageEmpty)
}

func TestFileHost(t *testing.T) {
	assert := assert.New(t)

	file := &File{Path: t.TempDir() + "/nothing.bin"}
	_, err := file.Load(BOOT_SECTOR_SIZE)
	assert.ErrorIs(err, ErrImageLoad)
}
