package wah

import (
	"errors"
	"fmt"
)

// ErrUnsupportedOperation is returned when an operation does not apply to
// the kind of word it was called on. All packing errors wrap it.
var ErrUnsupportedOperation = errors.New("wah: unsupported operation")

// ErrInvalidArgument is returned when a constructor argument is out of range.
var ErrInvalidArgument = errors.New("wah: invalid argument")

// ErrInvalidBuffer is returned when a buffer does not hold exactly one word.
var ErrInvalidBuffer = errors.New("wah: invalid buffer")

var (
	// ErrNotCompressed is returned by FillCount on a literal word.
	ErrNotCompressed = fmt.Errorf("%w: word is not compressed", ErrUnsupportedOperation)
	// ErrNoPackedWord is returned when reading the packed literal of a word without one.
	ErrNoPackedWord = fmt.Errorf("%w: no packed word", ErrUnsupportedOperation)
	// ErrNotPackable is returned by Pack when the receiver is not a fill of run length one.
	ErrNotPackable = fmt.Errorf("%w: word is not a run of one", ErrUnsupportedOperation)
	// ErrAlreadyPacked is returned by Pack when the receiver already carries a packed literal.
	ErrAlreadyPacked = fmt.Errorf("%w: word already packed", ErrUnsupportedOperation)
	// ErrCandidateNotLiteral is returned by Pack for a compressed candidate.
	ErrCandidateNotLiteral = fmt.Errorf("%w: candidate is not a literal", ErrUnsupportedOperation)
	// ErrCandidateNotSingleton is returned by Pack for a candidate without exactly one set bit.
	ErrCandidateNotSingleton = fmt.Errorf("%w: candidate does not have exactly one set bit", ErrUnsupportedOperation)
	ErrRunTooLong            = fmt.Errorf("%w: run longer than one group", ErrUnsupportedOperation)
)
