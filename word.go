// Package wah implements the 32-bit word of a Word-Aligned-Hybrid (WAH)
// compressed bitmap, extended with single-bit packing.
//
// A Word is either a literal holding 31 bitmap bits verbatim or a fill
// standing for a run of uniform 31-bit groups. A fill of run length one
// may additionally carry one packed literal: a 31-bit group that differs
// from the fill pattern in exactly one bit. Bitmap containers build on
// Word to store sequences of words and to run set algebra over them; this
// package only deals with the single word. Words are plain values with no
// shared state; Compress and Pack mutate the receiver and need exclusive
// access to it.
package wah

import (
	"fmt"
	"math/bits"
)

// Word layout constants.
//
// The 32-bit word is structured as follows:
//
//	Literal:    bit 31 = 0, bits 0-30 = literal content
//	Fill:       bit 31 = 1, bit 30 = fill bit, bits 0-29 = count field
//
// The count field holds the run length for values 1..MaxFillCount. The 31
// values above MaxFillCount mark a packed run of one: the field then holds
// MaxFillCount + 1 + packed position.
const (
	// GroupBits is the number of bitmap bits one literal word holds.
	GroupBits = 31

	CompressedFlag = uint32(1 << 31)
	FillBitFlag    = uint32(1 << 30)

	// LiteralMask selects the literal content bits. A literal equal to the
	// mask is the all-ones group.
	LiteralMask = uint32(1<<GroupBits - 1)
	// FillCountMask selects the count field of a fill word.
	FillCountMask = uint32(1<<30 - 1)

	// MaxFillCount is the longest run a single fill word can represent.
	MaxFillCount = FillCountMask - GroupBits

	packedBase        = MaxFillCount + 1
	maxPackedPosition = GroupBits - 1
)

// Word is a single WAH word. The zero value is the all-zeros literal.
type Word struct {
	raw uint32
}

// FromRaw wraps v verbatim. Any bit pattern is accepted, including
// compressed words produced elsewhere.
func FromRaw(v uint32) Word {
	return Word{raw: v}
}

// Literal returns a literal word holding the low 31 bits of content.
func Literal(content uint32) Word {
	return Word{raw: content & LiteralMask}
}

// FromFill returns a fill word for a run of fillCount groups of fillBit.
// The count must lie in [1, MaxFillCount].
func FromFill(fillBit bool, fillCount uint32) (Word, error) {
	if fillCount == 0 || fillCount > MaxFillCount {
		return Word{}, fmt.Errorf("%w: fill count %d outside [1, %d]",
			ErrInvalidArgument, fillCount, MaxFillCount)
	}
	return Word{raw: fillHeader(fillBit) | fillCount}, nil
}

func fillHeader(fillBit bool) uint32 {
	if fillBit {
		return CompressedFlag | FillBitFlag
	}
	return CompressedFlag
}

// Raw returns the 32-bit encoding of w.
func (w Word) Raw() uint32 {
	return w.raw
}

// IsCompressed reports whether w is a fill word.
func (w Word) IsCompressed() bool {
	return w.raw&CompressedFlag != 0
}

// IsCompressible reports whether w is a literal whose 31 content bits are
// all equal. Fill words are never compressible.
func (w Word) IsCompressible() bool {
	return w.raw == 0 || w.raw == LiteralMask
}

// FillBit returns the repeated bit of a fill word. For a literal it reports
// whether the literal is the all-ones group, so it is only meaningful for
// compressible literals.
func (w Word) FillBit() bool {
	if w.IsCompressed() {
		return w.raw&FillBitFlag != 0
	}
	return w.raw == LiteralMask
}

// Content returns the literal content bits. Fill words have no content.
func (w Word) Content() uint32 {
	if w.IsCompressed() {
		return 0
	}
	return w.raw
}

func (w Word) countField() uint32 {
	return w.raw & FillCountMask
}

// FillCount returns the number of groups a fill word stands for. A packed
// word always reports 1.
func (w Word) FillCount() (uint32, error) {
	if !w.IsCompressed() {
		return 0, fmt.Errorf("%w: %s", ErrNotCompressed, w)
	}
	if w.HasPackedWord() {
		return 1, nil
	}
	return w.countField(), nil
}

// HasPackedWord reports whether w is a run of one carrying a packed literal.
func (w Word) HasPackedWord() bool {
	return w.IsCompressed() && w.countField() > MaxFillCount
}

// PackedPosition returns 30 minus the index of the set bit of the packed
// literal, counting content bits from the least significant one.
func (w Word) PackedPosition() (int, error) {
	if !w.HasPackedWord() {
		return 0, fmt.Errorf("%w: %s", ErrNoPackedWord, w)
	}
	return int(w.countField() - packedBase), nil
}

// PackedWord rebuilds the packed literal of w.
func (w Word) PackedWord() (Word, error) {
	pos, err := w.PackedPosition()
	if err != nil {
		return Word{}, err
	}
	return Literal(1 << (maxPackedPosition - pos)), nil
}

// Compress turns a compressible literal into a fill word of run length one.
// Fill words and mixed literals are left untouched, so calling Compress
// more than once is harmless.
func (w *Word) Compress() {
	if !w.IsCompressible() {
		return
	}
	w.raw = fillHeader(w.raw == LiteralMask) | 1
}

// Len returns the number of bitmap bits w stands for.
func (w Word) Len() uint64 {
	if !w.IsCompressed() {
		return GroupBits
	}
	n, _ := w.FillCount()
	return uint64(n) * GroupBits
}

// OnesCount returns the number of set bitmap bits w stands for. The packed
// position of a packed word is the one bit of the group that differs from
// the fill bit.
func (w Word) OnesCount() uint64 {
	switch {
	case !w.IsCompressed():
		return uint64(bits.OnesCount32(w.raw))
	case w.HasPackedWord():
		if w.FillBit() {
			return GroupBits - 1
		}
		return 1
	case w.FillBit():
		return w.Len()
	}
	return 0
}

// Expand returns the literal a run of one stands for, with the packed bit
// applied. Literals are returned as is; longer runs cannot be expanded into
// a single word.
func (w Word) Expand() (Word, error) {
	if !w.IsCompressed() {
		return w, nil
	}
	if n, _ := w.FillCount(); n != 1 {
		return Word{}, fmt.Errorf("%w: %s", ErrRunTooLong, w)
	}
	var content uint32
	if w.FillBit() {
		content = LiteralMask
	}
	if w.HasPackedWord() {
		p, _ := w.PackedWord()
		content ^= p.raw
	}
	return Literal(content), nil
}

// String returns a short description of w such as "literal(0x12345678)",
// "fill1x5" or "fill0x1+packed@30".
func (w Word) String() string {
	if !w.IsCompressed() {
		return fmt.Sprintf("literal(0x%08x)", w.raw)
	}
	fill := 0
	if w.FillBit() {
		fill = 1
	}
	if w.HasPackedWord() {
		return fmt.Sprintf("fill%dx1+packed@%d", fill, w.countField()-packedBase)
	}
	return fmt.Sprintf("fill%dx%d", fill, w.countField())
}
