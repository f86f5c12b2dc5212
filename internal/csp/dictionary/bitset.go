package dictionary

import "math/bits"

// Bitset is a fixed-universe set of word-ids, one bit per id. It is the
// domain representation recommended by the design notes: smallest type
// supporting membership, iteration, count, and fast intersection, and
// cheap to snapshot. No third-party bitset library appears anywhere in
// the example pack, so this is implemented directly on math/bits.
type Bitset struct {
	words []uint64
}

// NewBitset returns an empty Bitset sized to hold ids in [0, n).
func NewBitset(n int) *Bitset {
	return &Bitset{words: make([]uint64, (n+63)/64)}
}

// Clone returns an independent copy of b.
func (b *Bitset) Clone() *Bitset {
	out := &Bitset{words: make([]uint64, len(b.words))}
	copy(out.words, b.words)
	return out
}

// Set turns on bit i.
func (b *Bitset) Set(i int) {
	b.words[i/64] |= 1 << uint(i%64)
}

// Clear turns off bit i.
func (b *Bitset) Clear(i int) {
	b.words[i/64] &^= 1 << uint(i%64)
}

// Test reports whether bit i is set.
func (b *Bitset) Test(i int) bool {
	return b.words[i/64]&(1<<uint(i%64)) != 0
}

// Count returns the number of set bits. O(1) queries are not literal here
// (it's O(words)) but words is bounded by dictionary length-bucket size
// divided by 64, which is cheap relative to a full domain scan.
func (b *Bitset) Count() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// IsEmpty reports whether no bits are set.
func (b *Bitset) IsEmpty() bool {
	for _, w := range b.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// And intersects b with other in place.
func (b *Bitset) And(other *Bitset) {
	for i := range b.words {
		if i < len(other.words) {
			b.words[i] &= other.words[i]
		} else {
			b.words[i] = 0
		}
	}
}

// AndNot clears every bit in b that is set in other.
func (b *Bitset) AndNot(other *Bitset) {
	for i := range b.words {
		if i < len(other.words) {
			b.words[i] &^= other.words[i]
		}
	}
}

// Intersects reports whether b and other share any set bit, without
// allocating.
func (b *Bitset) Intersects(other *Bitset) bool {
	for i := range b.words {
		if i >= len(other.words) {
			break
		}
		if b.words[i]&other.words[i] != 0 {
			return true
		}
	}
	return false
}

// IntersectionExcluding reports whether b and other share any set bit
// other than bit `excl` (excl < 0 means no exclusion). Used by AC-3's
// Revise to implement the "w' != w" clause without materializing a copy.
func (b *Bitset) IntersectionExcluding(other *Bitset, excl int) bool {
	for i := range b.words {
		if i >= len(other.words) {
			break
		}
		word := b.words[i] & other.words[i]
		if excl >= 0 && i == excl/64 {
			word &^= 1 << uint(excl%64)
		}
		if word != 0 {
			return true
		}
	}
	return false
}

// Each calls fn for every set bit in ascending order.
func (b *Bitset) Each(fn func(i int)) {
	for wi, w := range b.words {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			fn(wi*64 + tz)
			w &= w - 1
		}
	}
}

// Slice returns the set bits in ascending order.
func (b *Bitset) Slice() []int {
	out := make([]int, 0, b.Count())
	b.Each(func(i int) { out = append(out, i) })
	return out
}
