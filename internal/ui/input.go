package ui

import (
	"errors"
	"strconv"

	"github.com/GeorgeW-alt2/sigil/internal/symbol"
)

var (
	// ErrInvalidBatchSize is returned when the batch size field is not a
	// positive whole number.
	ErrInvalidBatchSize = errors.New("batch size must be a positive whole number")
	// ErrInvalidLengthBound is returned when a length field is not a
	// positive whole number.
	ErrInvalidLengthBound = errors.New("lengths must be positive whole numbers")
	// ErrLengthBoundTooLarge is returned when a length field exceeds the
	// longest symbol the validator accepts.
	ErrLengthBoundTooLarge = errors.New("lengths must not exceed the maximum symbol length")
)

// BatchInput is the validated form of the three numeric entry fields.
type BatchInput struct {
	Count     int
	MinLength int
	MaxLength int
	// Swapped reports that the bounds arrived inverted and were exchanged.
	Swapped bool
}

// ParseBatchInput validates the raw entry field values. Inverted length
// bounds are swapped rather than rejected.
func ParseBatchInput(count, minLen, maxLen string) (BatchInput, error) {
	n, err := strconv.Atoi(count)
	if err != nil || n < 1 {
		return BatchInput{}, ErrInvalidBatchSize
	}
	lo, err := strconv.Atoi(minLen)
	if err != nil || lo < 1 {
		return BatchInput{}, ErrInvalidLengthBound
	}
	hi, err := strconv.Atoi(maxLen)
	if err != nil || hi < 1 {
		return BatchInput{}, ErrInvalidLengthBound
	}
	in := BatchInput{Count: n, MinLength: lo, MaxLength: hi}
	if in.MinLength > in.MaxLength {
		in.MinLength, in.MaxLength = in.MaxLength, in.MinLength
		in.Swapped = true
	}
	if in.MaxLength > symbol.MaxSymbolLength {
		return BatchInput{}, ErrLengthBoundTooLarge
	}
	return in, nil
}
