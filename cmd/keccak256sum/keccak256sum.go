// Command keccak256sum prints or checks Keccak-256 digests of files, or of a byte range within each file.
package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/codahale/keccak256"
)

type config struct {
	start, length int
	check         bool
	parallel      bool
}

func main() {
	var (
		start    = flag.Int("start", 0, "the offset of the first byte to hash")
		length   = flag.Int("length", -1, "the number of bytes to hash, or -1 for the rest of the input")
		check    = flag.Bool("c", false, "read digests from the files and check them")
		parallel = flag.Bool("j", false, "hash the files in parallel")
	)
	flag.Parse()

	log := slog.New(slog.Default().Handler())

	cfg := config{start: *start, length: *length, check: *check, parallel: *parallel}
	if err := run(context.Background(), log, cfg, flag.Args(), os.Stdin, os.Stdout); err != nil {
		log.Error("failed", "err", err)
		os.Exit(1)
	}
}

var (
	errChecksumMismatch = errors.New("one or more digests did not match")
	errParallelRange    = errors.New("-j cannot be combined with -start or -length")
)

func run(ctx context.Context, log *slog.Logger, cfg config, names []string, stdin io.Reader, stdout io.Writer) error {
	if len(names) == 0 {
		names = []string{"-"}
	}

	switch {
	case cfg.check:
		return checkAll(log, cfg, names, stdin, stdout)
	case cfg.parallel:
		return sumParallel(ctx, cfg, names, stdin, stdout)
	}

	var failed bool
	for _, name := range names {
		digest, err := sumFile(cfg, name, stdin)
		if err != nil {
			log.Error("error hashing", "path", name, "err", err)
			failed = true
			continue
		}
		_, _ = fmt.Fprintf(stdout, "%x  %s\n", digest, name)
	}

	if failed {
		return errors.New("one or more inputs could not be hashed")
	}
	return nil
}

func sumFile(cfg config, name string, stdin io.Reader) ([keccak256.Size]byte, error) {
	r, closer, err := open(name, stdin)
	if err != nil {
		return [keccak256.Size]byte{}, err
	}
	defer closer()

	return sumReader(cfg, r)
}

func sumReader(cfg config, r io.Reader) ([keccak256.Size]byte, error) {
	// Whole inputs stream through a Hasher; ranges need the full buffer to be bounds-checked.
	if cfg.start == 0 && cfg.length < 0 {
		h := keccak256.New()
		if _, err := io.Copy(h, r); err != nil {
			return [keccak256.Size]byte{}, err
		}
		return h.Finalize()
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return [keccak256.Size]byte{}, err
	}

	length := cfg.length
	if length < 0 {
		length = max(len(data)-cfg.start, 0)
	}
	return keccak256.SumRange(data, cfg.start, length)
}

func sumParallel(ctx context.Context, cfg config, names []string, stdin io.Reader, stdout io.Writer) error {
	if cfg.start != 0 || cfg.length >= 0 {
		return errParallelRange
	}

	inputs := make([][]byte, len(names))
	for i, name := range names {
		r, closer, err := open(name, stdin)
		if err != nil {
			return err
		}
		inputs[i], err = io.ReadAll(r)
		closer()
		if err != nil {
			return fmt.Errorf("reading %s: %w", name, err)
		}
	}

	sums, err := keccak256.SumAll(ctx, inputs)
	if err != nil {
		return err
	}

	for i, name := range names {
		_, _ = fmt.Fprintf(stdout, "%x  %s\n", sums[i], name)
	}
	return nil
}

// checkAll reads lines of the form "<hex digest>  <path>" from each named file and verifies each path's digest.
func checkAll(log *slog.Logger, cfg config, names []string, stdin io.Reader, stdout io.Writer) error {
	var failed int
	for _, name := range names {
		r, closer, err := open(name, stdin)
		if err != nil {
			return err
		}

		n, err := check(log, cfg, r, stdout)
		closer()
		if err != nil {
			return fmt.Errorf("reading %s: %w", name, err)
		}
		failed += n
	}

	if failed > 0 {
		log.Warn("digests did not match", "count", failed)
		return errChecksumMismatch
	}
	return nil
}

func check(log *slog.Logger, cfg config, r io.Reader, stdout io.Writer) (failed int, err error) {
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		want, path, ok := parseLine(scanner.Text())
		if !ok {
			log.Warn("improperly formatted line", "line", line)
			failed++
			continue
		}

		got, err := sumFile(cfg, path, nil)
		if err != nil {
			log.Error("error hashing", "path", path, "err", err)
			_, _ = fmt.Fprintf(stdout, "%s: FAILED open or read\n", path)
			failed++
			continue
		}

		if bytes.Equal(got[:], want) {
			_, _ = fmt.Fprintf(stdout, "%s: OK\n", path)
		} else {
			_, _ = fmt.Fprintf(stdout, "%s: FAILED\n", path)
			failed++
		}
	}
	return failed, scanner.Err()
}

func parseLine(line string) (digest []byte, path string, ok bool) {
	hexDigest, path, ok := strings.Cut(line, "  ")
	if !ok || len(hexDigest) != 2*keccak256.Size || path == "" {
		return nil, "", false
	}

	digest, err := hex.DecodeString(hexDigest)
	if err != nil {
		return nil, "", false
	}
	return digest, path, true
}

func open(name string, stdin io.Reader) (io.Reader, func(), error) {
	if name == "-" && stdin != nil {
		return stdin, func() {}, nil
	}

	f, err := os.Open(name) //nolint:gosec // opening user-supplied paths is the point
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}
