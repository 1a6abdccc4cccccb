// Package bitutil provides the compact bit vector used to carry thresholded
// scanline data.
package bitutil

import "strings"

// BitArray is a fixed-size array of bits backed by uint64 words. In row
// signals, a set bit marks a dark (bar) pixel.
type BitArray struct {
	words []uint64
	size  int
}

// NewBitArray creates a BitArray of the given size with all bits unset.
func NewBitArray(size int) *BitArray {
	if size <= 0 {
		return &BitArray{}
	}
	return &BitArray{
		words: make([]uint64, (size+63)/64),
		size:  size,
	}
}

// Size returns the number of bits in the array.
func (ba *BitArray) Size() int {
	return ba.size
}

// Get reports whether bit i is set.
func (ba *BitArray) Get(i int) bool {
	return ba.words[i>>6]&(1<<uint(i&63)) != 0
}

// Set sets bit i.
func (ba *BitArray) Set(i int) {
	ba.words[i>>6] |= 1 << uint(i&63)
}

// Unset clears bit i.
func (ba *BitArray) Unset(i int) {
	ba.words[i>>6] &^= 1 << uint(i&63)
}

// Equal reports whether two arrays hold the same bits.
func (ba *BitArray) Equal(other *BitArray) bool {
	if ba.size != other.size {
		return false
	}
	for i := 0; i < ba.size; i++ {
		if ba.Get(i) != other.Get(i) {
			return false
		}
	}
	return true
}

// String renders the array with 'X' for set (dark) and '.' for unset bits.
func (ba *BitArray) String() string {
	var b strings.Builder
	b.Grow(ba.size)
	for i := 0; i < ba.size; i++ {
		if ba.Get(i) {
			b.WriteByte('X')
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}
