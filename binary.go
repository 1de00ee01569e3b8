package wah

import (
	"encoding/binary"
	"fmt"
)

// WordBytes is the size of the wire form of a Word.
const WordBytes = 4

var bo = binary.LittleEndian

// AppendBinary appends the little-endian raw form of w to dst so callers
// can reuse buffers when writing many words.
func (w Word) AppendBinary(dst []byte) ([]byte, error) {
	return bo.AppendUint32(dst, w.raw), nil
}

// MarshalBinary returns the 4-byte little-endian raw form of w.
func (w Word) MarshalBinary() ([]byte, error) {
	return w.AppendBinary(make([]byte, 0, WordBytes))
}

// UnmarshalBinary replaces w with the word encoded in buf, which must be
// exactly WordBytes long. Like FromRaw, no validation of the bits is done.
func (w *Word) UnmarshalBinary(buf []byte) error {
	if len(buf) != WordBytes {
		return fmt.Errorf("%w: need %d bytes, got %d", ErrInvalidBuffer, WordBytes, len(buf))
	}
	w.raw = bo.Uint32(buf)
	return nil
}
