package io

// Rom is an image held in memory.
type Rom struct {
	Data []byte
}

var _ Image = (*Rom)(nil)

// Load returns a copy of the ROM contents. A nil ROM has no data to load;
// a zero length ROM is an empty image.
func (rc *Rom) Load(limit int) (data []byte, err error) {
	if rc.Data == nil {
		err = &ErrLoad{Source: "rom", Err: ErrImageEmpty}
		return
	}

	data = append([]byte{}, truncate(rc.Data, limit)...)
	return
}
