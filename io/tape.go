package io

import (
	"io"
)

// Tape reads an image from a byte stream, such as standard input.
type Tape struct {
	Input io.Reader
}

var _ Image = (*Tape)(nil)

// Load reads the stream until EOF or until 'limit' bytes have been read.
// Bytes past the limit are left unread.
func (tc *Tape) Load(limit int) (data []byte, err error) {
	if tc.Input == nil {
		err = &ErrLoad{Source: "tape", Err: ErrImageEmpty}
		return
	}

	input := tc.Input
	if limit > 0 {
		input = io.LimitReader(input, int64(limit))
	}

	data, err = io.ReadAll(input)
	if err != nil {
		err = &ErrLoad{Source: "tape", Err: err}
		data = nil
		return
	}

	return
}
