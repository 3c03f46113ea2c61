// Package keccak256 implements the Keccak-256 hash function, the 256-bit member of the original Keccak submission with
// its 0x01 multi-rate padding, as used by Ethereum. It is not SHA3-256, which pads with 0x06 and produces different
// digests.
//
// Keccak-256 is a sponge over the Keccak-f[1600] permutation with a rate of 136 bytes and a capacity of 64 bytes.
package keccak256

import (
	"errors"
	"fmt"

	"github.com/codahale/keccak256/internal/sponge"
)

const (
	// Size is the size, in bytes, of a Keccak-256 digest.
	Size = sponge.Size

	// BlockSize is the rate of the sponge, in bytes. Writes which are a multiple of BlockSize skip the internal buffer.
	BlockSize = sponge.Rate
)

var (
	// ErrOutOfRange is returned when a requested range does not lie entirely within its input.
	ErrOutOfRange = errors.New("keccak256: range out of bounds")

	// ErrFinalized is returned when a Hasher is written to or finalized after it has already been finalized.
	ErrFinalized = errors.New("keccak256: hash already finalized")

	// ErrInvalidState is returned when unmarshaling a malformed Hasher state.
	ErrInvalidState = sponge.ErrInvalidState
)

// Sum256 returns the Keccak-256 digest of data.
func Sum256(data []byte) [Size]byte {
	var h Hasher
	h.Reset()
	h.absorb(data)
	return h.checkSum()
}

// SumRange returns the Keccak-256 digest of the length bytes of input starting at start. It returns an error wrapping
// ErrOutOfRange if either value is negative or if the range extends past the end of input. No byte outside the range is
// read.
func SumRange(input []byte, start, length int) ([Size]byte, error) {
	if start < 0 || length < 0 || start > len(input) || length > len(input)-start {
		return [Size]byte{}, fmt.Errorf("%w: start=%d length=%d input=%d", ErrOutOfRange, start, length, len(input))
	}
	return Sum256(input[start : start+length : start+length]), nil
}
