package wah

import (
	"fmt"
	"math/bits"
)

// Pack embeds candidate into w. The receiver must be an unpacked fill of
// run length one and candidate a literal with exactly one set content bit.
// On failure w is left unchanged. The fill bit is not touched: the packed
// position only records which bit of the group differs from the fill.
func (w *Word) Pack(candidate Word) error {
	if !w.packable() {
		return fmt.Errorf("%w: %s", ErrNotPackable, *w)
	}
	if w.HasPackedWord() {
		return fmt.Errorf("%w: %s", ErrAlreadyPacked, *w)
	}
	if candidate.IsCompressed() {
		return fmt.Errorf("%w: %s", ErrCandidateNotLiteral, candidate)
	}
	if bits.OnesCount32(candidate.raw) != 1 {
		return fmt.Errorf("%w: %s", ErrCandidateNotSingleton, candidate)
	}

	pos := maxPackedPosition - bits.TrailingZeros32(candidate.raw)
	w.raw = w.raw&^FillCountMask | (packedBase + uint32(pos))
	return nil
}

// packable reports whether w is a fill of run length one, packed or not.
func (w Word) packable() bool {
	if !w.IsCompressed() {
		return false
	}
	n, _ := w.FillCount()
	return n == 1
}
