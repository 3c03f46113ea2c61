// Package mem provides slice helpers for appending fixed-size outputs.
package mem

import "slices"

// SliceForAppend takes a slice and a requested number of bytes. It returns a slice with the contents of the given
// slice followed by that many bytes and a second slice that aliases into it and contains only the extra bytes. If the
// original slice has sufficient capacity, then no allocation is performed.
func SliceForAppend(in []byte, n int) (head, tail []byte) {
	head = slices.Grow(in, n)
	head = head[:len(in)+n]
	tail = head[len(in):]
	return head, tail
}
