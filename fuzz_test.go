package keccak256_test

import (
	"bytes"
	"crypto/sha3"
	"errors"
	"testing"

	"github.com/codahale/keccak256"
	fuzz "github.com/trailofbits/go-fuzz-utils"
	legacy "golang.org/x/crypto/sha3"
)

// FuzzHasherChunking generates a random message and a random sequence of chunk sizes, writes the message to a Hasher in
// those chunks, and checks that the digest matches both a single-shot digest and the legacy Keccak-256 reference.
func FuzzHasherChunking(f *testing.F) {
	drbg := sha3.NewSHAKE128()
	_, _ = drbg.Write([]byte("keccak256 chunking"))

	for range 10 {
		seed := make([]byte, 1024)
		_, _ = drbg.Read(seed)
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}

		message, err := tp.GetBytes()
		if err != nil {
			t.Skip(err)
		}

		h := keccak256.New()
		for p := message; len(p) > 0; {
			// Once the chunk sizes run out, write the rest at once.
			n := len(p)
			if size, err := tp.GetUint16(); err == nil {
				n = min(int(size)%(3*keccak256.BlockSize), len(p))
			}

			if _, err := h.Write(p[:n]); err != nil {
				t.Fatal(err)
			}
			p = p[n:]
		}

		got, err := h.Finalize()
		if err != nil {
			t.Fatal(err)
		}

		if want := keccak256.Sum256(message); got != want {
			t.Fatalf("chunked digest %x != single-shot digest %x", got, want)
		}

		ref := legacy.NewLegacyKeccak256()
		_, _ = ref.Write(message)
		if want := ref.Sum(nil); !bytes.Equal(got[:], want) {
			t.Fatalf("digest %x != reference digest %x", got, want)
		}
	})
}

// FuzzSumRange checks that SumRange either hashes exactly the requested range of its input or rejects it.
func FuzzSumRange(f *testing.F) {
	f.Add([]byte("xxabcxx"), 2, 3)
	f.Add([]byte("abc"), 0, 3)
	f.Add([]byte("abc"), 3, 0)
	f.Add([]byte("abc"), 2, 2)
	f.Add([]byte{}, -1, 0)

	f.Fuzz(func(t *testing.T, input []byte, start, length int) {
		got, err := keccak256.SumRange(input, start, length)

		valid := start >= 0 && length >= 0 && start <= len(input) && length <= len(input)-start
		if !valid {
			if !errors.Is(err, keccak256.ErrOutOfRange) {
				t.Fatalf("SumRange(%d, %d) of %d bytes err = %v, want = %v", start, length, len(input), err,
					keccak256.ErrOutOfRange)
			}
			return
		}

		if err != nil {
			t.Fatal(err)
		}
		if want := keccak256.Sum256(bytes.Clone(input[start : start+length])); got != want {
			t.Fatalf("SumRange(%d, %d) = %x, want = %x", start, length, got, want)
		}
	})
}
