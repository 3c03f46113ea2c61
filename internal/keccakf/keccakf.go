// Package keccakf implements the Keccak-f[1600] permutation over a state of 25 little-endian 64-bit lanes. Lane
// (x, y) of the 5x5 matrix lives at index x+5*y.
package keccakf

import "math/bits"

const (
	Lanes  = 25 // The number of 64-bit lanes in the state.
	Rounds = 24 // The number of rounds in Keccak-f[1600].
)

// rc holds the round constants for the ι step.
//
//nolint:gochecknoglobals // constant table
var rc = [Rounds]uint64{
	0x0000000000000001,
	0x0000000000008082,
	0x800000000000808A,
	0x8000000080008000,
	0x000000000000808B,
	0x0000000080000001,
	0x8000000080008081,
	0x8000000000008009,
	0x000000000000008A,
	0x0000000000000088,
	0x0000000080008009,
	0x000000008000000A,
	0x000000008000808B,
	0x800000000000008B,
	0x8000000000008089,
	0x8000000000008003,
	0x8000000000008002,
	0x8000000000000080,
	0x000000000000800A,
	0x800000008000000A,
	0x8000000080008081,
	0x8000000000008080,
	0x0000000080000001,
	0x8000000080008008,
}

// piln and rotc drive the combined ρ and π steps. Starting with lane 1, each lane in turn is rotated left by rotc[i]
// and moved to index piln[i], displacing the lane which is processed next. Lane 0 is neither rotated nor moved.
//
//nolint:gochecknoglobals // constant tables
var (
	piln = [Lanes - 1]int{10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4, 15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1}
	rotc = [Lanes - 1]int{1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14, 27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44}
)

// F1600 applies the Keccak-f[1600] permutation (24 rounds) to the state in place.
func F1600(a *[Lanes]uint64) {
	var c [5]uint64
	for _, roundConstant := range rc {
		// θ step
		for x := range 5 {
			c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		for x := range 5 {
			d := c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
			for y := 0; y < Lanes; y += 5 {
				a[y+x] ^= d
			}
		}

		// ρ and π steps
		t := a[1]
		for i, j := range piln {
			t, a[j] = a[j], bits.RotateLeft64(t, rotc[i])
		}

		// χ step
		for y := 0; y < Lanes; y += 5 {
			copy(c[:], a[y:y+5])
			for x := range 5 {
				a[y+x] = c[x] ^ (^c[(x+1)%5] & c[(x+2)%5])
			}
		}

		// ι step
		a[0] ^= roundConstant
	}
}
