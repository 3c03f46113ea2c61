package keccak256_test

import (
	"fmt"
	"io"

	"github.com/codahale/keccak256"
)

func ExampleSum256() {
	sum := keccak256.Sum256([]byte("abc"))
	fmt.Printf("%x\n", sum)
	// Output: 4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45
}

func ExampleSumRange() {
	// Hash only the "abc" in the middle of the buffer.
	buf := []byte("xxabcxx")
	sum, err := keccak256.SumRange(buf, 2, 3)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%x\n", sum)

	// Ranges which extend past the buffer are rejected.
	_, err = keccak256.SumRange(buf, 5, 3)
	fmt.Println(err)
	// Output:
	// 4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45
	// keccak256: range out of bounds: start=5 length=3 input=7
}

func ExampleHasher() {
	h := keccak256.New()
	_, _ = io.WriteString(h, "The quick brown fox ")
	_, _ = io.WriteString(h, "jumps over the lazy dog")

	sum, err := h.Finalize()
	if err != nil {
		panic(err)
	}
	fmt.Printf("%x\n", sum)

	// A finalized Hasher must be reset before reuse.
	_, err = io.WriteString(h, "more")
	fmt.Println(err)
	// Output:
	// 4d741b6f1eb29cb2a9b9911c82f56fa8d73b04959d3d9d222895df6c0b28aa15
	// keccak256: hash already finalized
}
