// Package dictionary is the indexed word store: words grouped by length,
// queryable by fixed-letter pattern via an inverted (position, letter)
// index, per spec §4.2. A word once added is never removed (§3's
// Dictionary lifecycle).
package dictionary

import (
	"sort"
	"strings"
)

// WordID identifies a word within its length bucket. Ids are stable for
// the lifetime of the Dictionary: appending new words never renumbers
// existing ones.
type WordID int

// bucket holds one length's words in insertion (WordID) order plus its
// inverted position/letter index. Callers that need a deterministic
// enumeration order sort word strings explicitly, e.g. Candidates.
type bucket struct {
	words []string
	// index[position]['A'-'A'] -> Bitset of word-ids with that letter at that position.
	index map[int]*[26]*Bitset
}

// Dictionary is the finite set of UPPERCASE alphabetic words of length >=
// MinWordLength, grouped by length with a per-length inverted index.
type Dictionary struct {
	MinWordLength int
	buckets       map[int]*bucket
}

// New creates an empty Dictionary. minWordLength <= 0 uses the grid
// package's DefaultMinWordLength-equivalent default of 3.
func New(minWordLength int) *Dictionary {
	if minWordLength <= 0 {
		minWordLength = 3
	}
	return &Dictionary{
		MinWordLength: minWordLength,
		buckets:       make(map[int]*bucket),
	}
}

// Add uppercases word, rejects it if too short or non-alphabetic, and
// appends it to its length bucket, rebuilding that position's index
// entries. Idempotent on duplicates.
func (d *Dictionary) Add(word string) bool {
	_, ok := d.AddID(word)
	return ok
}

// AddID behaves like Add but also reports the word's WordID, whether
// newly inserted or already present. Used by callers (the solver's
// oracle-refill step) that need to build a Bitset naming the word
// immediately after adding it.
func (d *Dictionary) AddID(word string) (WordID, bool) {
	word = strings.ToUpper(strings.TrimSpace(word))
	if len(word) < d.MinWordLength || !isAlpha(word) {
		return 0, false
	}

	length := len(word)
	b, ok := d.buckets[length]
	if !ok {
		b = &bucket{index: make(map[int]*[26]*Bitset)}
		d.buckets[length] = b
	}

	for i, existing := range b.words {
		if existing == word {
			return WordID(i), true // already present; idempotent
		}
	}

	id := WordID(len(b.words))
	b.words = append(b.words, word)
	d.indexWord(b, id, word)
	return id, true
}

// IndexOf returns the WordID of word within its length bucket, if present.
func (d *Dictionary) IndexOf(word string) (WordID, bool) {
	b, ok := d.buckets[len(word)]
	if !ok {
		return 0, false
	}
	for i, w := range b.words {
		if w == word {
			return WordID(i), true
		}
	}
	return 0, false
}

func (d *Dictionary) indexWord(b *bucket, id WordID, word string) {
	for pos, ch := range word {
		letters, ok := b.index[pos]
		if !ok {
			letters = &[26]*Bitset{}
			b.index[pos] = letters
		}
		li := int(ch - 'A')
		if letters[li] == nil {
			letters[li] = NewBitset(int(id) + 1)
		}
		ensureBits(letters[li], int(id)+1)
		letters[li].Set(int(id))
	}
}

// ensureBits grows b in place so it can hold at least n bits.
func ensureBits(b *Bitset, n int) {
	needWords := (n + 63) / 64
	if len(b.words) >= needWords {
		return
	}
	grown := make([]uint64, needWords)
	copy(grown, b.words)
	b.words = grown
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// WordsOfLength returns every word of the given length, in WordID order.
func (d *Dictionary) WordsOfLength(length int) []string {
	b, ok := d.buckets[length]
	if !ok {
		return nil
	}
	return b.words
}

// WordsFromBitset returns the words of the given length named by bs, in
// ascending WordID order (not sorted alphabetically).
func (d *Dictionary) WordsFromBitset(length int, bs *Bitset) []string {
	b, ok := d.buckets[length]
	if !ok {
		return nil
	}
	out := make([]string, 0, bs.Count())
	bs.Each(func(id int) {
		out = append(out, b.words[id])
	})
	return out
}

// WordAt returns the word for a given length/id pair.
func (d *Dictionary) WordAt(length int, id WordID) string {
	return d.buckets[length].words[id]
}

// Size returns the total number of words across all buckets.
func (d *Dictionary) Size() int {
	n := 0
	for _, b := range d.buckets {
		n += len(b.words)
	}
	return n
}

// AllBitset returns a Bitset with every word-id of the given length set.
func (d *Dictionary) AllBitset(length int) *Bitset {
	b, ok := d.buckets[length]
	if !ok {
		return NewBitset(0)
	}
	bs := NewBitset(len(b.words))
	for i := range b.words {
		bs.Set(i)
	}
	return bs
}

// PositionIndex returns the Bitset of word-ids of the given length with
// letter ch at position pos, or an empty Bitset if none. The returned
// Bitset is padded to the bucket's current size so callers can safely
// And/Intersects it against full-length bitsets; it is always a copy,
// safe for the caller to mutate.
func (d *Dictionary) PositionIndex(length, pos int, ch byte) *Bitset {
	b, ok := d.buckets[length]
	if !ok {
		return NewBitset(0)
	}
	out := NewBitset(len(b.words))
	letters, ok := b.index[pos]
	if !ok || letters[ch-'A'] == nil {
		return out
	}
	copy(out.words, letters[ch-'A'].words)
	return out
}

// PatternBitset returns the Bitset of word-ids of the given length
// matching pattern ('.' for unknown positions, A-Z for fixed letters).
// Used directly by node consistency and AC3 so they can intersect
// domains without round-tripping through word strings.
func (d *Dictionary) PatternBitset(length int, pattern string) *Bitset {
	if len(pattern) != length {
		return NewBitset(0)
	}
	if _, ok := d.buckets[length]; !ok {
		return NewBitset(0)
	}

	matches := d.AllBitset(length)
	for pos := 0; pos < length; pos++ {
		if pattern[pos] == '.' {
			continue
		}
		matches.And(d.PositionIndex(length, pos, pattern[pos]))
	}
	return matches
}

// Candidates returns every word of the given length matching pattern
// ('.' for unknown positions, A-Z for fixed letters) and not present in
// exclude, per the Dictionary contract in spec §4.2 and §6.
func (d *Dictionary) Candidates(length int, pattern string, exclude map[string]struct{}) []string {
	b, ok := d.buckets[length]
	if !ok {
		return nil
	}
	matches := d.PatternBitset(length, pattern)

	var out []string
	matches.Each(func(id int) {
		w := b.words[id]
		if _, excluded := exclude[w]; !excluded {
			out = append(out, w)
		}
	})
	sort.Strings(out)
	return out
}
