// Package config holds the emulator creation parameters and run limits.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

const (
	MEMORY_SIZE = 1024 * 1024 // Default memory size.
	BOOT_ESP    = 0x7c00      // Default initial stack pointer.
	LOAD_LIMIT  = 0x200       // Default image size limit.
)

// Config is the emulator configuration, as read from a TOML file.
type Config struct {
	MemorySize uint32 `toml:"memory-size"` // Memory size in bytes.
	Eip        uint32 `toml:"eip"`         // Initial instruction pointer.
	Esp        uint32 `toml:"esp"`         // Initial stack pointer.
	LoadLimit  int    `toml:"load-limit"`  // Maximum image bytes loaded; 0 for no limit.
	StepLimit  int    `toml:"step-limit"`  // Maximum instructions executed; 0 for no limit.
	Verbose    bool   `toml:"verbose"`     // Enable per-instruction trace logging.
}

// Default returns the boot-sector configuration.
func Default() (cfg *Config) {
	cfg = &Config{
		MemorySize: MEMORY_SIZE,
		Eip:        0,
		Esp:        BOOT_ESP,
		LoadLimit:  LOAD_LIMIT,
	}
	return
}

// Decode reads TOML from a reader over the default configuration.
// Keys not present keep their default values.
func Decode(input io.Reader) (cfg *Config, err error) {
	cfg = Default()

	meta, err := toml.NewDecoder(input).Decode(cfg)
	if err != nil {
		cfg = nil
		return
	}

	if undecoded := meta.Undecoded(); len(undecoded) != 0 {
		cfg = nil
		err = &ErrUnknownKey{Key: undecoded[0].String()}
		return
	}

	err = cfg.Validate()
	if err != nil {
		cfg = nil
		return
	}

	return
}

// Load reads the TOML configuration file at 'path'.
func Load(path string) (cfg *Config, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	cfg, err = Decode(inf)
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
		return
	}

	return
}

// Validate checks the configuration for impossible values.
func (cfg *Config) Validate() (err error) {
	switch {
	case cfg.MemorySize == 0:
		err = ErrMemorySize
	case cfg.LoadLimit < 0:
		err = ErrLoadLimit
	case cfg.StepLimit < 0:
		err = ErrStepLimit
	}

	return
}
