package keccak256_test

import (
	"context"
	"errors"
	"testing"

	"github.com/codahale/keccak256"
)

func TestSumAll(t *testing.T) {
	t.Parallel()

	t.Run("matches Sum256", func(t *testing.T) {
		t.Parallel()

		inputs := make([][]byte, 100)
		for i := range inputs {
			inputs[i] = deterministicBytes("keccak256 batch", i*7)
		}

		sums, err := keccak256.SumAll(t.Context(), inputs)
		if err != nil {
			t.Fatal(err)
		}

		if got, want := len(sums), len(inputs); got != want {
			t.Fatalf("len(SumAll()) = %d, want = %d", got, want)
		}
		for i, input := range inputs {
			if got, want := sums[i], keccak256.Sum256(input); got != want {
				t.Errorf("SumAll()[%d] = %x, want = %x", i, got, want)
			}
		}
	})

	t.Run("no inputs", func(t *testing.T) {
		t.Parallel()

		sums, err := keccak256.SumAll(t.Context(), nil)
		if err != nil {
			t.Fatal(err)
		}
		if len(sums) != 0 {
			t.Errorf("SumAll(nil) = %x, want none", sums)
		}
	})

	t.Run("canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		sums, err := keccak256.SumAll(ctx, [][]byte{[]byte("a"), []byte("b")})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("SumAll() err = %v, want = %v", err, context.Canceled)
		}
		if sums != nil {
			t.Errorf("SumAll() = %x, want nil", sums)
		}
	})
}
