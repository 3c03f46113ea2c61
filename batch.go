package keccak256

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/cpu"
)

// slot holds one digest, padded so that concurrent writes to neighboring slots never share a cache line.
type slot struct {
	sum [Size]byte
	_   cpu.CacheLinePad
}

// SumAll returns the Keccak-256 digests of inputs, in order, hashing up to GOMAXPROCS inputs in parallel. If ctx is
// canceled before every input has been hashed, it returns ctx's error and no digests. An individual digest, once
// started, always runs to completion.
func SumAll(ctx context.Context, inputs [][]byte) ([][Size]byte, error) {
	slots := make([]slot, len(inputs))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i := range inputs {
		if err := egCtx.Err(); err != nil {
			_ = eg.Wait()
			return nil, err
		}

		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			slots[i].sum = Sum256(inputs[i])
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	sums := make([][Size]byte, len(slots))
	for i := range slots {
		sums[i] = slots[i].sum
	}
	return sums, nil
}
