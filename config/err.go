package config

import (
	"errors"

	"github.com/ezrec/px86/translate"
)

var f = translate.From

var (
	ErrMemorySize = errors.New(f("memory-size must be positive"))
	ErrLoadLimit  = errors.New(f("load-limit must not be negative"))
	ErrStepLimit  = errors.New(f("step-limit must not be negative"))
)

type ErrUnknownKey struct {
	Key string
}

func (err *ErrUnknownKey) Error() string {
	return f("unknown key '%v'", err.Key)
}
