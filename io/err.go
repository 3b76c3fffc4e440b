package io

import (
	"errors"

	"github.com/ezrec/px86/translate"
)

var f = translate.From

var (
	// Image errors
	ErrImageLoad  = errors.New(f("image load failure"))
	ErrImageEmpty = errors.New(f("image missing"))
)

// ErrLoad records the image source that failed to load. It matches ErrImageLoad.
type ErrLoad struct {
	Source string
	Err    error
}

func (err *ErrLoad) Error() string {
	return f("%v: %v", err.Source, err.Err)
}

func (err *ErrLoad) Unwrap() error {
	return err.Err
}

func (err *ErrLoad) Is(target error) bool {
	return target == ErrImageLoad
}
