// Package oracle implements the bounded, accounted adapter to an
// external word source, per spec §4.6: a pattern/themed/clue capability
// behind call-budget accounting and a response cache.
package oracle

import (
	"context"
	"fmt"
)

// Word is a single dictionary entry as returned by an Oracle.
type Word = string

// Clue is the short clue text associated with a word.
type Clue = string

// Kind identifies a class of oracle call for budget accounting.
type Kind string

const (
	KindPatternMatch Kind = "pattern_match"
	KindThemedList   Kind = "themed_list"
	KindClueBatch    Kind = "clue_batch"
)

// Oracle is the capability required of any external word source, per
// spec §6's Oracle contract.
type Oracle interface {
	WordsMatching(ctx context.Context, pattern string, count int, exclude map[string]struct{}) ([]Word, error)
	ThemedWords(ctx context.Context, topic string, count, lenMin, lenMax int) ([]ThemedWord, error)
	CluesFor(ctx context.Context, words []Word) (map[Word]Clue, error)
}

// ThemedWord pairs a themed-list result with its suggested clue.
type ThemedWord struct {
	Word Word
	Clue Clue
}

// LimitPolicy governs behavior when a call budget is exhausted.
type LimitPolicy int

const (
	// PolicyFail surfaces OracleRefused to the caller.
	PolicyFail LimitPolicy = iota
	// PolicyFallback downgrades a refusal to UnsatisfiableDomain,
	// letting the search continue dictionary-only.
	PolicyFallback
)

// ErrRefused reports that a call was declined by the budget, not by
// the underlying transport.
type ErrRefused struct {
	Kind Kind
}

func (e *ErrRefused) Error() string {
	return fmt.Sprintf("oracle: call budget exhausted for kind %q", e.Kind)
}

// Record is one entry in the adapter's call history.
type Record struct {
	Kind    Kind
	Tokens  int
	Success bool
}

// Budget tracks global and per-kind call caps and an exhaustion
// callback, per spec §4.6 and §6's oracle.max_total_calls /
// oracle.per_kind_caps configuration.
type Budget struct {
	MaxTotal     int
	MaxPerKind   map[Kind]int
	OnExhausted  func(kind Kind)
	totalCalls   int
	callsPerKind map[Kind]int
	history      []Record
}

// NewBudget builds a Budget with the given global and per-kind caps. A
// negative maxTotal means unlimited; maxTotal=0 permits zero calls.
// Kinds absent from maxPerKind are bounded only by the global cap.
func NewBudget(maxTotal int, maxPerKind map[Kind]int) *Budget {
	return &Budget{
		MaxTotal:     maxTotal,
		MaxPerKind:   maxPerKind,
		callsPerKind: make(map[Kind]int),
	}
}

// CanCall reports whether a call of the given kind is currently
// permitted: total calls under the global cap AND per-kind calls under
// that kind's cap. A negative cap means "unlimited" for that scope.
func (b *Budget) CanCall(kind Kind) bool {
	if b.MaxTotal >= 0 && b.totalCalls >= b.MaxTotal {
		return false
	}
	if cap, ok := b.MaxPerKind[kind]; ok && cap >= 0 && b.callsPerKind[kind] >= cap {
		return false
	}
	return true
}

// Record bumps the counters for kind and appends a history entry. It
// should be called exactly once per actual (non-cache-hit) call.
func (b *Budget) Record(kind Kind, tokens int, success bool) {
	b.totalCalls++
	b.callsPerKind[kind]++
	b.history = append(b.history, Record{Kind: kind, Tokens: tokens, Success: success})

	if !b.CanCall(kind) && b.OnExhausted != nil {
		b.OnExhausted(kind)
	}
}

// History returns the full call history, in call order.
func (b *Budget) History() []Record {
	return b.history
}

// TotalCalls returns the number of calls recorded so far.
func (b *Budget) TotalCalls() int {
	return b.totalCalls
}
