package io

import (
	"io"
	"io/fs"
	"os"
)

// File reads an image from a named file. If FS is nil, the host file system
// is used.
type File struct {
	Path string
	FS   fs.FS
}

var _ Image = (*File)(nil)

func (fc *File) open() (file fs.File, err error) {
	if fc.FS == nil {
		file, err = os.Open(fc.Path)
	} else {
		file, err = fc.FS.Open(fc.Path)
	}
	return
}

// Load reads up to 'limit' bytes from the start of the file.
func (fc *File) Load(limit int) (data []byte, err error) {
	defer func() {
		if err != nil {
			err = &ErrLoad{Source: fc.Path, Err: err}
			data = nil
		}
	}()

	if len(fc.Path) == 0 {
		err = ErrImageEmpty
		return
	}

	file, err := fc.open()
	if err != nil {
		return
	}
	defer file.Close()

	var input io.Reader = file
	if limit > 0 {
		input = io.LimitReader(file, int64(limit))
	}

	data, err = io.ReadAll(input)
	return
}
