// Package sponge implements the state of a Keccak-256 sponge: a Keccak-f[1600] permutation state with a capacity of
// 512 bits and a rate of 1088 bits, plus Keccak's multi-rate padding.
package sponge

import (
	"encoding"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/codahale/keccak256/internal/keccakf"
)

const (
	Width    = keccakf.Lanes * 8 // The width of the permutation in bytes.
	Capacity = 2 * Size          // The sponge's capacity in bytes, twice the output size.
	Rate     = Width - Capacity  // The number of bytes absorbed per permutation.
	Size     = 32                // The number of bytes squeezed.
)

// A State is the 1600-bit state of a Keccak sponge. The zero value is an empty sponge.
type State struct {
	a [keccakf.Lanes]uint64
}

// Absorb XORs a Rate-sized block into the first Rate/8 lanes, reading each 8-byte group as a little-endian word, and
// then permutes the state. Lanes beyond the rate are untouched by the XOR.
func (s *State) Absorb(block []byte) {
	if len(block) != Rate {
		panic("keccak256: internal error: absorbed block is not rate-sized")
	}

	for i := range Rate / 8 {
		s.a[i] ^= binary.LittleEndian.Uint64(block[i*8:])
	}
	keccakf.F1600(&s.a)
}

// Squeeze writes the first Size bytes of the state, little-endian per lane, to dst.
func (s *State) Squeeze(dst *[Size]byte) {
	for i := range Size / 8 {
		binary.LittleEndian.PutUint64(dst[i*8:], s.a[i])
	}
}

// Reset zeroes the state.
func (s *State) Reset() {
	clear(s.a[:])
}

// Pad applies Keccak's pad10*1 multi-rate padding to a block whose first n bytes hold the unabsorbed tail of the
// message: a 0x01 byte after the tail, zeroes up to the end of the block, and 0x80 XORed into the last byte. If the
// tail is Rate-1 bytes long, the first and last padding bits share a byte and it becomes 0x81.
func Pad(block *[Rate]byte, n int) {
	if n < 0 || n >= Rate {
		panic("keccak256: internal error: padded tail is not shorter than the rate")
	}

	block[n] = 0x01
	clear(block[n+1:])
	block[Rate-1] ^= 0x80
}

func (s *State) String() string {
	b, _ := s.AppendBinary(make([]byte, 0, Width))
	return hex.EncodeToString(b)
}

func (s *State) AppendBinary(b []byte) ([]byte, error) {
	for _, lane := range s.a {
		b = binary.LittleEndian.AppendUint64(b, lane)
	}
	return b, nil
}

func (s *State) MarshalBinary() (data []byte, err error) {
	return s.AppendBinary(make([]byte, 0, Width))
}

func (s *State) UnmarshalBinary(data []byte) error {
	if len(data) != Width {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidState, len(data), Width)
	}

	for i := range s.a {
		s.a[i] = binary.LittleEndian.Uint64(data[i*8:])
	}
	return nil
}

// ErrInvalidState is returned when unmarshaling a state of the wrong length.
var ErrInvalidState = errors.New("keccak256: invalid hash state")

var (
	_ fmt.Stringer               = (*State)(nil)
	_ encoding.BinaryAppender    = (*State)(nil)
	_ encoding.BinaryMarshaler   = (*State)(nil)
	_ encoding.BinaryUnmarshaler = (*State)(nil)
)
