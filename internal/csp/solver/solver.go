// Package solver implements backtracking search with forward inference
// over a ConstraintGraph, per spec §4.5: node consistency, initial
// AC-3, MRV+degree variable selection, LCV value ordering, a full copy
// of the domains snapshotted and restored on backtrack, oracle refill,
// and deadline-bounded
// cancellation.
package solver

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/crossplay/crossgen/internal/csp/ac3"
	"github.com/crossplay/crossgen/internal/csp/constraintgraph"
	"github.com/crossplay/crossgen/internal/csp/dictionary"
	"github.com/crossplay/crossgen/internal/csp/gridmodel"
	"github.com/crossplay/crossgen/internal/csp/oracle"
)

// Outcome is the terminal state of a Solve call.
type Outcome int

const (
	// outcomeNone is the solver's internal "no fatal condition yet"
	// sentinel; it is never returned from Solve.
	outcomeNone Outcome = iota
	Solved
	NoSolution
	DeadlineExceeded
	OracleExhausted
)

func (o Outcome) String() string {
	switch o {
	case Solved:
		return "solved"
	case NoSolution:
		return "no_solution"
	case DeadlineExceeded:
		return "deadline_exceeded"
	case OracleExhausted:
		return "oracle_exhausted"
	default:
		return "none"
	}
}

// Solution maps each slot to its filled-in word.
type Solution map[gridmodel.SlotID]string

// Stats are the counters spec §4.5 requires for post-hoc reporting.
type Stats struct {
	Backtracks       int
	AC3Revisions     int
	AssignmentsTried int
	OracleRequests   int
	OracleWordsAdded int
	Elapsed          time.Duration
}

// ProgressFunc is invoked roughly every Config.ProgressInterval with
// the current assignment size, slot total, backtracks, and assignments
// tried so far.
type ProgressFunc func(assigned, total, backtracks, tried int)

// Config governs inference, deadline, and progress-reporting behavior.
type Config struct {
	// UseInference toggles AC-3 (initial and incremental). With it
	// off the solver still enforces crossing consistency directly.
	UseInference bool
	// Deadline is the wall-clock budget for one Solve call. Zero
	// means no deadline.
	Deadline time.Duration
	// ProgressInterval is how often Progress is invoked. Zero
	// disables progress reporting.
	ProgressInterval time.Duration
	// Progress receives periodic progress reports, if non-nil.
	Progress ProgressFunc
	// Cancel, if non-nil, is polled alongside the deadline at each
	// variable-selection step; returning true aborts the search.
	Cancel func() bool
}

// OracleRequestCount is how many words the solver asks the oracle for
// per refill, per spec §4.5's "request K words" refill policy.
const OracleRequestCount = 8

// Result is the outcome of one Solve call.
type Result struct {
	Outcome  Outcome
	Solution Solution
	Stats    Stats
}

// Solver runs backtracking search over one grid's constraint graph and
// dictionary. Solve may be called repeatedly on the same Solver; each
// call resets its own counters.
type Solver struct {
	grid *gridmodel.GridModel
	cg   *constraintgraph.ConstraintGraph
	dict *dictionary.Dictionary
	prop *ac3.Propagator

	oracleAdapter *oracle.Adapter
	cfg           Config

	stats        Stats
	used         map[string]struct{}
	fatal        Outcome
	deadlineAt   time.Time
	startedAt    time.Time
	lastProgress time.Time
}

// New builds a Solver. oracleAdapter may be nil to disable oracle
// refill entirely (equivalent to oracle.enabled=false).
func New(grid *gridmodel.GridModel, cg *constraintgraph.ConstraintGraph, dict *dictionary.Dictionary, oracleAdapter *oracle.Adapter, cfg Config) *Solver {
	return &Solver{
		grid:          grid,
		cg:            cg,
		dict:          dict,
		prop:          ac3.New(cg, dict),
		oracleAdapter: oracleAdapter,
		cfg:           cfg,
	}
}

// Solve runs node consistency, initial AC-3, and backtracking search to
// completion, per spec §4.5's six-step algorithm. ctx's deadline and
// cancellation are checked alongside Config.Deadline/Config.Cancel at
// every variable-selection step, and are passed on to any oracle call
// a refill makes.
func (s *Solver) Solve(ctx context.Context) Result {
	s.startedAt = time.Now()
	s.lastProgress = s.startedAt
	if s.cfg.Deadline > 0 {
		s.deadlineAt = s.startedAt.Add(s.cfg.Deadline)
	} else {
		s.deadlineAt = time.Time{}
	}
	s.fatal = outcomeNone
	s.used = make(map[string]struct{})
	s.stats = Stats{}
	s.prop.Stats = ac3.Stats{}

	domains := s.prop.NewDomains()
	s.prop.ApplyNodeConsistency(domains, s.grid)

	if s.cfg.UseInference && !s.prop.Run(ctx, domains, s.prop.SeedAll(), s.refill) {
		return s.finish(nil)
	}

	assignment := make(Solution, len(s.cg.Slots()))
	if s.search(ctx, domains, assignment) {
		return s.finish(assignment)
	}
	return s.finish(nil)
}

func (s *Solver) finish(assignment Solution) Result {
	s.stats.AC3Revisions = s.prop.Stats.Revisions
	s.stats.Elapsed = time.Since(s.startedAt)

	outcome := NoSolution
	switch {
	case assignment != nil:
		outcome = Solved
	case s.fatal != outcomeNone:
		outcome = s.fatal
	}
	return Result{Outcome: outcome, Solution: assignment, Stats: s.stats}
}

// search is the recursive backtracking core. It returns true once every
// slot is assigned; false on exhaustion, deadline breach, or a fatal
// oracle refusal (distinguished via s.fatal).
func (s *Solver) search(ctx context.Context, domains ac3.Domains, assignment Solution) bool {
	if s.fatal != outcomeNone {
		return false
	}
	if s.deadlineBreached(ctx) {
		s.fatal = DeadlineExceeded
		return false
	}
	s.reportProgress(len(assignment))

	if len(assignment) == len(s.cg.Slots()) {
		return true
	}

	slotID, ok := s.selectUnassignedSlot(domains, assignment)
	if !ok {
		return false
	}
	sl := s.cg.Slot(slotID)

	for _, word := range s.orderValues(slotID, domains, assignment) {
		if s.fatal != outcomeNone {
			return false
		}
		if s.deadlineBreached(ctx) {
			s.fatal = DeadlineExceeded
			return false
		}

		s.stats.AssignmentsTried++
		snapshot := domains.Clone()

		assignment[slotID] = word
		s.used[word] = struct{}{}
		domains[slotID] = s.singleton(sl.Length, word)

		ok := true
		if s.cfg.UseInference {
			ok = s.prop.Run(ctx, domains, s.prop.SeedIncoming(slotID), s.refill)
		}

		if ok && s.search(ctx, domains, assignment) {
			return true
		}

		for id, bs := range snapshot {
			domains[id] = bs
		}
		delete(assignment, slotID)
		delete(s.used, word)
		if s.fatal == outcomeNone {
			s.stats.Backtracks++
		}
	}
	return false
}

func (s *Solver) singleton(length int, word string) *dictionary.Bitset {
	bs := dictionary.NewBitset(len(s.dict.WordsOfLength(length)))
	if id, ok := s.dict.IndexOf(word); ok {
		bs.Set(int(id))
	}
	return bs
}

// selectUnassignedSlot implements MRV + degree tiebreak: smallest
// current domain, then most unassigned neighbors, then lowest clue
// number, then lowest slot id, for total determinism.
func (s *Solver) selectUnassignedSlot(domains ac3.Domains, assignment Solution) (gridmodel.SlotID, bool) {
	var best *gridmodel.Slot
	bestSize, bestDegree := -1, -1

	for _, sl := range s.cg.Slots() {
		if _, assigned := assignment[sl.ID]; assigned {
			continue
		}
		size := domains[sl.ID].Count()
		degree := s.unassignedDegree(sl.ID, assignment)

		if best == nil || better(size, degree, sl, bestSize, bestDegree, best) {
			best, bestSize, bestDegree = sl, size, degree
		}
	}
	if best == nil {
		return 0, false
	}
	return best.ID, true
}

func better(size, degree int, sl *gridmodel.Slot, bestSize, bestDegree int, best *gridmodel.Slot) bool {
	if size != bestSize {
		return size < bestSize
	}
	if degree != bestDegree {
		return degree > bestDegree
	}
	if sl.Number != best.Number {
		return sl.Number < best.Number
	}
	return sl.ID < best.ID
}

func (s *Solver) unassignedDegree(slot gridmodel.SlotID, assignment Solution) int {
	n := 0
	for _, nb := range s.cg.Neighbors(slot) {
		if _, assigned := assignment[nb]; !assigned {
			n++
		}
	}
	return n
}

// orderValues implements LCV: candidate words for slot, filtered by
// uniqueness and direct crossing consistency, sorted ascending by how
// many values they would eliminate from unassigned neighbors' domains,
// tied broken alphabetically for determinism.
func (s *Solver) orderValues(slot gridmodel.SlotID, domains ac3.Domains, assignment Solution) []string {
	sl := s.cg.Slot(slot)
	words := s.dict.WordsFromBitset(sl.Length, domains[slot])
	sort.Strings(words)

	type scored struct {
		word string
		cost int
	}
	candidates := make([]scored, 0, len(words))
	for _, w := range words {
		if _, used := s.used[w]; used {
			continue
		}
		if !s.consistentWithAssigned(slot, w, assignment) {
			continue
		}
		candidates = append(candidates, scored{w, s.eliminationCost(slot, w, domains, assignment)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].cost != candidates[j].cost {
			return candidates[i].cost < candidates[j].cost
		}
		return candidates[i].word < candidates[j].word
	})

	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.word
	}
	return out
}

func (s *Solver) consistentWithAssigned(slot gridmodel.SlotID, word string, assignment Solution) bool {
	for _, n := range s.cg.Neighbors(slot) {
		val, ok := assignment[n]
		if !ok {
			continue
		}
		crossing, ok := s.cg.Crossing(slot, n)
		if !ok {
			continue
		}
		if word[crossing.IndexInA] != val[crossing.IndexInB] {
			return false
		}
	}
	return true
}

func (s *Solver) eliminationCost(slot gridmodel.SlotID, word string, domains ac3.Domains, assignment Solution) int {
	cost := 0
	for _, n := range s.cg.Neighbors(slot) {
		if _, assigned := assignment[n]; assigned {
			continue
		}
		crossing, ok := s.cg.Crossing(slot, n)
		if !ok {
			continue
		}
		ns := s.cg.Slot(n)
		ch := word[crossing.IndexInA]

		support := s.dict.PositionIndex(ns.Length, crossing.IndexInB, ch)
		support.And(domains[n])
		cost += domains[n].Count() - support.Count()
	}
	return cost
}

// refill is the oracle-refill hook passed to ac3.Propagator.Run: it
// asks the oracle for words matching slot's current pattern, validates
// them against length and pattern, adds survivors to the Dictionary,
// and widens the slot's domain to exactly those words.
func (s *Solver) refill(ctx context.Context, slot gridmodel.SlotID, domains ac3.Domains) bool {
	if s.oracleAdapter == nil || !s.oracleAdapter.Enabled() {
		return false
	}

	sl := s.cg.Slot(slot)
	pattern := gridmodel.PatternFor(sl)

	words, err := s.oracleAdapter.RequestWords(ctx, pattern, OracleRequestCount, s.used)
	if err != nil {
		var refused *oracle.ErrRefused
		if errors.As(err, &refused) && s.oracleAdapter.Policy() == oracle.PolicyFail {
			s.fatal = OracleExhausted
		}
		return false
	}
	s.stats.OracleRequests++

	var survivors []string
	for _, w := range words {
		if len(w) != sl.Length || !oracle.ConformsToPattern(w, pattern) {
			continue
		}
		survivors = append(survivors, w)
	}
	if len(survivors) == 0 {
		return false
	}

	ids := make([]int, 0, len(survivors))
	for _, w := range survivors {
		id, _ := s.dict.AddID(w)
		ids = append(ids, int(id))
	}
	s.stats.OracleWordsAdded += len(survivors)

	bs := dictionary.NewBitset(len(s.dict.WordsOfLength(sl.Length)))
	for _, id := range ids {
		bs.Set(id)
	}
	domains[slot] = bs
	return true
}

func (s *Solver) deadlineBreached(ctx context.Context) bool {
	if !s.deadlineAt.IsZero() && time.Now().After(s.deadlineAt) {
		return true
	}
	if ctx != nil && ctx.Err() != nil {
		return true
	}
	return s.cfg.Cancel != nil && s.cfg.Cancel()
}

func (s *Solver) reportProgress(assigned int) {
	if s.cfg.Progress == nil || s.cfg.ProgressInterval <= 0 {
		return
	}
	if time.Since(s.lastProgress) < s.cfg.ProgressInterval {
		return
	}
	s.lastProgress = time.Now()
	s.cfg.Progress(assigned, len(s.cg.Slots()), s.stats.Backtracks, s.stats.AssignmentsTried)
}
