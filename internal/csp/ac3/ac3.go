// Package ac3 implements arc-consistency propagation over slot domains,
// per spec §4.4: a work-queue of directed arcs, Revise, full and
// incremental seeding, and an oracle-refill hook invoked when Revise
// empties a domain.
package ac3

import (
	"context"

	"github.com/crossplay/crossgen/internal/csp/constraintgraph"
	"github.com/crossplay/crossgen/internal/csp/dictionary"
	"github.com/crossplay/crossgen/internal/csp/gridmodel"
)

// Arc is a directed edge in the propagation queue: "revise x against y".
type Arc struct {
	From, To gridmodel.SlotID
}

// Domains maps each slot to its current candidate-word bitset, indexed
// into the Dictionary's per-length bucket for that slot's Length.
type Domains map[gridmodel.SlotID]*dictionary.Bitset

// Clone returns a deep copy of d, safe to mutate independently.
func (d Domains) Clone() Domains {
	out := make(Domains, len(d))
	for id, bs := range d {
		out[id] = bs.Clone()
	}
	return out
}

// RefillFunc is called when Revise empties a slot's domain. It should
// attempt to widen domains[slot] (e.g. via an oracle request) and
// report whether the domain now has any candidates. The ac3 package
// never imports the oracle package; the Solver supplies this callback.
// ctx carries the caller's deadline/cancellation through to the oracle
// call the refill makes.
type RefillFunc func(ctx context.Context, slot gridmodel.SlotID, domains Domains) bool

// Stats accumulates counters meaningful across one or more Run calls.
type Stats struct {
	Revisions int
}

// Propagator runs AC-3 over a fixed ConstraintGraph and Dictionary.
type Propagator struct {
	cg    *constraintgraph.ConstraintGraph
	dict  *dictionary.Dictionary
	Stats Stats
}

// New creates a Propagator bound to cg and dict.
func New(cg *constraintgraph.ConstraintGraph, dict *dictionary.Dictionary) *Propagator {
	return &Propagator{cg: cg, dict: dict}
}

// NewDomains builds an initial Domains map with every slot's domain set
// to every word of its length, unconstrained by the grid's pattern.
func (p *Propagator) NewDomains() Domains {
	domains := make(Domains, len(p.cg.Slots()))
	for _, s := range p.cg.Slots() {
		domains[s.ID] = p.dict.AllBitset(s.Length)
	}
	return domains
}

// ApplyNodeConsistency intersects every slot's domain with the words
// matching its current letter pattern in the grid (spec §4.5 step 1).
func (p *Propagator) ApplyNodeConsistency(domains Domains, g *gridmodel.GridModel) {
	for _, s := range p.cg.Slots() {
		pattern := gridmodel.PatternFor(s)
		domains[s.ID].And(p.dict.PatternBitset(s.Length, pattern))
	}
}

// SeedAll returns every directed arc in the constraint graph, for a
// full (from-scratch) propagation pass.
func (p *Propagator) SeedAll() []Arc {
	var queue []Arc
	for _, s := range p.cg.Slots() {
		for _, n := range p.cg.Neighbors(s.ID) {
			queue = append(queue, Arc{From: n, To: s.ID})
		}
	}
	return queue
}

// SeedIncoming returns the arcs (neighbor -> s) for incremental
// propagation after s's domain has been narrowed by an assignment.
func (p *Propagator) SeedIncoming(s gridmodel.SlotID) []Arc {
	var queue []Arc
	for _, n := range p.cg.Neighbors(s) {
		queue = append(queue, Arc{From: n, To: s})
	}
	return queue
}

// Revise removes every value from domains[x] that has no support in
// domains[y] at their crossing. It returns whether anything was
// removed. The "w' != w" uniqueness clause is applied only when x and
// y's slots share a length (the only case where a word id could name
// the same string in both domains).
func (p *Propagator) Revise(domains Domains, arc Arc) bool {
	p.Stats.Revisions++

	sx := p.cg.Slot(arc.From)
	sy := p.cg.Slot(arc.To)
	crossing, ok := p.cg.Crossing(arc.From, arc.To)
	if !ok {
		return false
	}

	dx := domains[arc.From]
	dy := domains[arc.To]

	var toRemove []int
	dx.Each(func(id int) {
		word := p.dict.WordAt(sx.Length, dictionary.WordID(id))
		ch := word[crossing.IndexInA]

		excl := -1
		if sx.Length == sy.Length {
			excl = id
		}
		support := p.dict.PositionIndex(sy.Length, crossing.IndexInB, ch)
		if !support.IntersectionExcluding(dy, excl) {
			toRemove = append(toRemove, id)
		}
	})

	for _, id := range toRemove {
		dx.Clear(id)
	}
	return len(toRemove) > 0
}

// Run drains queue, applying Revise to each arc. When an arc's Revise
// empties domains[arc.From], refill is invoked (if non-nil); if refill
// fails to restore any candidates, Run reports failure. Otherwise every
// arc (z -> x) for neighbors z != arc.To is pushed back onto the queue.
// Run returns false (inconsistent) the first time a domain cannot be
// refilled; true once the queue drains cleanly.
func (p *Propagator) Run(ctx context.Context, domains Domains, queue []Arc, refill RefillFunc) bool {
	for len(queue) > 0 {
		arc := queue[0]
		queue = queue[1:]

		if !p.Revise(domains, arc) {
			continue
		}

		if domains[arc.From].IsEmpty() {
			if refill == nil || !refill(ctx, arc.From, domains) {
				return false
			}
		}

		for _, z := range p.cg.Neighbors(arc.From) {
			if z == arc.To {
				continue
			}
			queue = append(queue, Arc{From: z, To: arc.From})
		}
	}
	return true
}
