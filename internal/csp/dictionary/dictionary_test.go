package dictionary

import (
	"reflect"
	"testing"
)

func TestAdd_ValidatesAndFolds(t *testing.T) {
	d := New(3)

	cases := []struct {
		word string
		want bool
	}{
		{"cat", true},
		{"  dog  ", true},
		{"ox", false},    // too short
		{"a1b", false},   // non-alphabetic
		{"", false},
		{"CAT", true}, // duplicate once folded
	}

	for _, c := range cases {
		if got := d.Add(c.word); got != c.want {
			t.Errorf("Add(%q) = %v, want %v", c.word, got, c.want)
		}
	}

	if got := d.WordsOfLength(3); !reflect.DeepEqual(got, []string{"CAT", "DOG"}) {
		t.Errorf("WordsOfLength(3) = %v, want [CAT DOG]", got)
	}
}

func TestAdd_Idempotent(t *testing.T) {
	d := New(3)
	d.Add("apple")
	d.Add("APPLE")
	d.Add(" Apple ")

	if got := d.Size(); got != 1 {
		t.Errorf("Size() = %d, want 1", got)
	}
}

func TestCandidates_PatternMatching(t *testing.T) {
	d := New(3)
	for _, w := range []string{"CAT", "CAR", "BAT", "BAR", "CUT"} {
		d.Add(w)
	}

	cases := []struct {
		pattern string
		want    []string
	}{
		{"...", []string{"BAR", "BAT", "CAR", "CAT", "CUT"}},
		{"C..", []string{"CAR", "CAT", "CUT"}},
		{"CA.", []string{"CAR", "CAT"}},
		{"CAT", []string{"CAT"}},
		{"Z..", nil},
	}

	for _, c := range cases {
		got := d.Candidates(3, c.pattern, nil)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("Candidates(3, %q) = %v, want %v", c.pattern, got, c.want)
		}
	}
}

func TestCandidates_ExcludesGivenWords(t *testing.T) {
	d := New(3)
	for _, w := range []string{"CAT", "CAR", "CUT"} {
		d.Add(w)
	}

	exclude := map[string]struct{}{"CAT": {}}
	got := d.Candidates(3, "C..", exclude)
	want := []string{"CAR", "CUT"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Candidates with exclude = %v, want %v", got, want)
	}
}

func TestCandidates_WrongPatternLengthReturnsNil(t *testing.T) {
	d := New(3)
	d.Add("CAT")

	if got := d.Candidates(3, "..", nil); got != nil {
		t.Errorf("Candidates with mismatched pattern length = %v, want nil", got)
	}
}

func TestBuckets_AreIsolatedByLength(t *testing.T) {
	d := New(3)
	d.Add("CAT")
	d.Add("CATS")

	if got := d.Candidates(3, "...", nil); !reflect.DeepEqual(got, []string{"CAT"}) {
		t.Errorf("length-3 candidates = %v, want [CAT]", got)
	}
	if got := d.Candidates(4, "....", nil); !reflect.DeepEqual(got, []string{"CATS"}) {
		t.Errorf("length-4 candidates = %v, want [CATS]", got)
	}
	if got := d.Candidates(4, "CAT.", nil); !reflect.DeepEqual(got, []string{"CATS"}) {
		t.Errorf("length-4 pattern CAT. = %v, want [CATS]", got)
	}
}

func TestAllBitset_UnknownLengthIsEmpty(t *testing.T) {
	d := New(3)
	bs := d.AllBitset(5)
	if !bs.IsEmpty() {
		t.Error("AllBitset on unknown length should be empty")
	}
}

func TestPositionIndex_UnknownLetterIsEmpty(t *testing.T) {
	d := New(3)
	d.Add("CAT")

	bs := d.PositionIndex(3, 0, 'Z')
	if !bs.IsEmpty() {
		t.Error("PositionIndex for an absent letter should be empty")
	}
}

func TestWordAt_MatchesInsertionOrder(t *testing.T) {
	d := New(3)
	d.Add("CAT")
	d.Add("DOG")

	if got := d.WordAt(3, 0); got != "CAT" {
		t.Errorf("WordAt(3,0) = %q, want CAT", got)
	}
	if got := d.WordAt(3, 1); got != "DOG" {
		t.Errorf("WordAt(3,1) = %q, want DOG", got)
	}
}
