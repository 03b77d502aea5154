// Package product enumerates the cartesian product of an alphabet with itself, lazily.
//
// For an alphabet of size K and a length L the product holds K^L tuples. They are produced one at a
// time, in odometer order: the rightmost position advances first and positions are compared by their
// index in the alphabet, so the sequence is lexicographic over the alphabet's own ordering. A cursor
// keeps O(L) state no matter how large K^L is.
package product

import (
	"iter"
	"math/big"
)

// Cursor walks alphabet^length. The zero value is not usable, create one with NewCursor.
type Cursor[T any] struct {
	alphabet []T
	indices  []int
	value    []T
	started  bool
	done     bool
}

// NewCursor returns a cursor positioned before the first tuple of alphabet^length.
// The alphabet must not be modified while the cursor is in use.
func NewCursor[T any](alphabet []T, length uint) *Cursor[T] {
	return &Cursor[T]{
		alphabet: alphabet,
		indices:  make([]int, length),
		value:    make([]T, length),
	}
}

// Next advances to the next tuple and reports whether there is one.
func (cur *Cursor[T]) Next() bool {
	if cur.done {
		return false
	}

	if !cur.started {
		cur.started = true

		if len(cur.indices) > 0 && len(cur.alphabet) == 0 {
			cur.done = true
			return false
		}

		for i := range cur.indices {
			cur.indices[i] = 0
			cur.value[i] = cur.alphabet[0]
		}

		return true
	}

	for i := len(cur.indices) - 1; i >= 0; i-- {
		cur.indices[i]++

		if cur.indices[i] < len(cur.alphabet) {
			cur.value[i] = cur.alphabet[cur.indices[i]]
			return true
		}

		cur.indices[i] = 0
		cur.value[i] = cur.alphabet[0]
	}

	cur.done = true

	return false
}

// Value returns the current tuple. The slice is reused by the next call to Next, copy it to keep it.
func (cur *Cursor[T]) Value() []T {
	return cur.value
}

// Indices returns the alphabet positions of the current tuple. Same lifetime rules as Value.
func (cur *Cursor[T]) Indices() []int {
	return cur.indices
}

// Reset rewinds the cursor to before the first tuple.
func (cur *Cursor[T]) Reset() {
	cur.started = false
	cur.done = false
}

// Repeat returns the lazy sequence of every tuple of alphabet^length. Each range over the sequence
// starts from the first tuple again. The yielded slice is reused between iterations.
func Repeat[T any](alphabet []T, length uint) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		cur := NewCursor(alphabet, length)

		for cur.Next() {
			if !yield(cur.Value()) {
				return
			}
		}
	}
}

// Count returns size^length, the number of tuples in the product.
func Count(size int, length uint) *big.Int {
	return new(big.Int).Exp(big.NewInt(int64(size)), new(big.Int).SetUint64(uint64(length)), nil)
}

// CountRange returns the sum of size^length for every length in [minLen, maxLen].
func CountRange(size int, minLen, maxLen uint) *big.Int {
	total := new(big.Int)

	for length := minLen; length <= maxLen; length++ {
		total.Add(total, Count(size, length))

		if length == maxLen {
			break
		}
	}

	return total
}
