// Package io provides memory image sources for the px86 emulator.
//
// An Image supplies the raw bytes that are copied into memory at address 0
// before execution starts. Images are read from memory (Rom), from any
// io.Reader (Tape), or from a file (File).
package io

const (
	BOOT_SECTOR_SIZE = 0x200 // Default maximum image size.
)

// Image is a source of raw machine code.
type Image interface {
	// Load returns up to 'limit' bytes of the image.
	// A limit of zero or less loads the whole image.
	Load(limit int) ([]byte, error)
}

// truncate applies a load limit to an image.
func truncate(data []byte, limit int) []byte {
	if limit > 0 && len(data) > limit {
		return data[:limit]
	}
	return data
}
