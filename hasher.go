package keccak256

import (
	"bytes"
	"encoding"
	"encoding/hex"
	"fmt"
	"hash"

	"github.com/codahale/keccak256/internal/mem"
	"github.com/codahale/keccak256/internal/sponge"
)

type phase uint8

const (
	created phase = iota
	absorbing
	finalized
)

// A Hasher is an incremental Keccak-256 computation. It moves from created to absorbing on initialization and from
// absorbing to finalized on Finalize. Once finalized, Write and Finalize return ErrFinalized until Reset starts a new
// computation.
//
// The zero value is ready to use. A Hasher must not be written to concurrently.
type Hasher struct {
	s     sponge.State
	buf   [BlockSize]byte
	n     int // number of bytes in buf, always < BlockSize
	phase phase
	sum   [Size]byte // valid once finalized
}

// New returns a new, initialized Hasher.
func New() *Hasher {
	h := new(Hasher)
	h.Reset()
	return h
}

// Reset discards all absorbed data and any computed digest, returning the Hasher to its initial state.
func (h *Hasher) Reset() {
	h.s.Reset()
	clear(h.buf[:])
	h.n = 0
	h.sum = [Size]byte{}
	h.phase = absorbing
}

// Write absorbs p into the hash. It returns ErrFinalized, absorbing nothing, if the Hasher has been finalized.
// Otherwise it always absorbs all of p and returns len(p), nil.
func (h *Hasher) Write(p []byte) (int, error) {
	switch h.phase {
	case created:
		h.Reset()
	case finalized:
		return 0, ErrFinalized
	case absorbing:
	}

	h.absorb(p)
	return len(p), nil
}

// Finalize pads the absorbed data, permutes the state a final time, and returns the digest. The Hasher is spent
// afterward: further calls to Write or Finalize return ErrFinalized.
func (h *Hasher) Finalize() ([Size]byte, error) {
	switch h.phase {
	case created:
		h.Reset()
	case finalized:
		return [Size]byte{}, ErrFinalized
	case absorbing:
	}

	h.sum = h.checkSum()
	h.phase = finalized
	return h.sum, nil
}

// Sum appends the digest of the data absorbed so far to b and returns the resulting slice. It does not change the
// Hasher, so more data may be written afterward. On a finalized Hasher it appends the digest Finalize returned.
func (h *Hasher) Sum(b []byte) []byte {
	var sum [Size]byte
	switch h.phase {
	case created:
		sum = Sum256(nil)
	case absorbing:
		d := *h
		sum = d.checkSum()
	case finalized:
		sum = h.sum
	}

	ret, out := mem.SliceForAppend(b, Size)
	copy(out, sum[:])
	return ret
}

// Size returns the number of bytes Sum appends.
func (h *Hasher) Size() int {
	return Size
}

// BlockSize returns the rate of the sponge in bytes.
func (h *Hasher) BlockSize() int {
	return BlockSize
}

// Clone returns an independent copy of h.
func (h *Hasher) Clone() *Hasher {
	c := *h
	return &c
}

func (h *Hasher) absorb(p []byte) {
	// Top up a partially filled buffer first.
	if h.n > 0 {
		n := copy(h.buf[h.n:], p)
		h.n += n
		p = p[n:]
		if h.n < BlockSize {
			return
		}
		h.s.Absorb(h.buf[:])
		h.n = 0
	}

	// Absorb whole blocks directly from p, skipping the buffer.
	for len(p) >= BlockSize {
		h.s.Absorb(p[:BlockSize])
		p = p[BlockSize:]
	}

	h.n = copy(h.buf[:], p)
}

// checkSum pads and absorbs the final block and squeezes the digest. It mutates the sponge state, so callers which
// keep using h must call it on a copy.
func (h *Hasher) checkSum() [Size]byte {
	// The buffer never holds a full block, so there is always room for at least the 0x81 pad byte. A message which is
	// a multiple of the rate therefore gets a block consisting entirely of padding.
	sponge.Pad(&h.buf, h.n)
	h.s.Absorb(h.buf[:])
	h.n = 0

	var sum [Size]byte
	h.s.Squeeze(&sum)
	return sum
}

func (h *Hasher) String() string {
	return h.s.String() + "|" + hex.EncodeToString(h.buf[:h.n])
}

// The marshaled form is magic || state || buffer || buffered length || phase || digest.
const (
	magic           = "keccak256\x01"
	marshaledSize   = len(magic) + sponge.Width + BlockSize + 1 + 1 + Size
	marshaledBufIdx = len(magic) + sponge.Width
	marshaledNIdx   = marshaledBufIdx + BlockSize
	marshaledPhIdx  = marshaledNIdx + 1
	marshaledSumIdx = marshaledPhIdx + 1
)

// AppendBinary appends the Hasher's complete state to b, so that a computation can be checkpointed and resumed with
// UnmarshalBinary.
func (h *Hasher) AppendBinary(b []byte) ([]byte, error) {
	b = append(b, magic...)
	b, _ = h.s.AppendBinary(b)
	b = append(b, h.buf[:]...)
	b = append(b, byte(h.n), byte(h.phase))
	b = append(b, h.sum[:]...)
	return b, nil
}

func (h *Hasher) MarshalBinary() (data []byte, err error) {
	return h.AppendBinary(make([]byte, 0, marshaledSize))
}

// UnmarshalBinary restores a state produced by MarshalBinary. It returns an error wrapping ErrInvalidState if data is
// malformed, leaving h unchanged.
func (h *Hasher) UnmarshalBinary(data []byte) error {
	if len(data) != marshaledSize || !bytes.HasPrefix(data, []byte(magic)) {
		return fmt.Errorf("%w: unrecognized encoding", ErrInvalidState)
	}

	n, ph := int(data[marshaledNIdx]), phase(data[marshaledPhIdx])
	if n >= BlockSize || ph > finalized {
		return fmt.Errorf("%w: buffered=%d phase=%d", ErrInvalidState, n, ph)
	}

	var s sponge.State
	if err := s.UnmarshalBinary(data[len(magic):marshaledBufIdx]); err != nil {
		return err
	}

	h.s = s
	copy(h.buf[:], data[marshaledBufIdx:marshaledNIdx])
	h.n = n
	h.phase = ph
	copy(h.sum[:], data[marshaledSumIdx:])
	return nil
}

var (
	_ hash.Hash                  = (*Hasher)(nil)
	_ fmt.Stringer               = (*Hasher)(nil)
	_ encoding.BinaryAppender    = (*Hasher)(nil)
	_ encoding.BinaryMarshaler   = (*Hasher)(nil)
	_ encoding.BinaryUnmarshaler = (*Hasher)(nil)
)
