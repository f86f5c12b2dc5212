package solver

import (
	"context"
	"testing"

	"github.com/crossplay/crossgen/internal/csp/constraintgraph"
	"github.com/crossplay/crossgen/internal/csp/dictionary"
	"github.com/crossplay/crossgen/internal/csp/gridmodel"
	"github.com/crossplay/crossgen/internal/csp/oracle"
	"github.com/crossplay/crossgen/internal/oracle/stub"
)

// wordSquareDict builds the tiny 3x3 word-square fixture: rows BAT, ERA,
// DEN cross columns BED, ARE, TAN with no spare candidates, so the
// square and its transpose are the only legal fills.
func wordSquareDict() *dictionary.Dictionary {
	d := dictionary.New(3)
	for _, w := range []string{"BAT", "ERA", "DEN", "BED", "ARE", "TAN"} {
		d.Add(w)
	}
	return d
}

func newWordSquareSolver(t *testing.T, dict *dictionary.Dictionary, oracleAdapter *oracle.Adapter, cfg Config) (*Solver, *gridmodel.GridModel) {
	t.Helper()
	g := gridmodel.New(3, 3)
	slots := g.FindSlots()
	cg := constraintgraph.Build(slots)
	return New(g, cg, dict, oracleAdapter, cfg), g
}

var wordSquareByStart = map[[3]int]string{
	{0, 0, int(gridmodel.Across)}: "BAT",
	{1, 0, int(gridmodel.Across)}: "ERA",
	{2, 0, int(gridmodel.Across)}: "DEN",
	{0, 0, int(gridmodel.Down)}:   "BED",
	{0, 1, int(gridmodel.Down)}:   "ARE",
	{0, 2, int(gridmodel.Down)}:   "TAN",
}

// prefilledWordSquareGrid builds the 3x3 grid with every cell already
// lettered per wordSquareByStart, so node consistency alone collapses
// every slot's domain to its one correct word before AC-3 or search
// ever runs — the cleanest possible zero-backtrack fixture.
func prefilledWordSquareGrid(t *testing.T) (*gridmodel.GridModel, []*gridmodel.Slot) {
	t.Helper()
	g := gridmodel.New(3, 3)
	slots := g.FindSlots()
	for _, sl := range slots {
		key := [3]int{sl.StartRow, sl.StartCol, int(sl.Direction)}
		word, ok := wordSquareByStart[key]
		if !ok {
			t.Fatalf("unexpected slot %+v", sl)
		}
		gridmodel.ApplyWord(sl, word)
	}
	return g, slots
}

func TestSolve_TinySolvable_NoBacktracks(t *testing.T) {
	dict := wordSquareDict()
	g, slots := prefilledWordSquareGrid(t)
	cg := constraintgraph.Build(slots)
	s := New(g, cg, dict, nil, Config{UseInference: true})

	result := s.Solve(context.Background())
	if result.Outcome != Solved {
		t.Fatalf("Outcome = %v, want Solved", result.Outcome)
	}
	if result.Stats.Backtracks != 0 {
		t.Errorf("Backtracks = %d, want 0", result.Stats.Backtracks)
	}
	if result.Stats.AC3Revisions <= 0 {
		t.Errorf("AC3Revisions = %d, want > 0", result.Stats.AC3Revisions)
	}
	if result.Stats.AssignmentsTried != len(g.Slots()) {
		t.Errorf("AssignmentsTried = %d, want %d (one per slot, no backtracks)",
			result.Stats.AssignmentsTried, len(g.Slots()))
	}

	for _, sl := range g.Slots() {
		key := [3]int{sl.StartRow, sl.StartCol, int(sl.Direction)}
		want, ok := wordSquareByStart[key]
		if !ok {
			t.Fatalf("unexpected slot %+v", sl)
		}
		if got := result.Solution[sl.ID]; got != want {
			t.Errorf("slot at (%d,%d) %s = %q, want %q", sl.StartRow, sl.StartCol, sl.Direction, got, want)
		}
	}
}

func TestSolve_EmptyDictionary_NoSolutionWithoutOracle(t *testing.T) {
	dict := dictionary.New(3)
	s, _ := newWordSquareSolver(t, dict, nil, Config{UseInference: true})

	result := s.Solve(context.Background())
	if result.Outcome != NoSolution {
		t.Errorf("Outcome = %v, want NoSolution", result.Outcome)
	}
	if result.Stats.OracleRequests != 0 {
		t.Errorf("OracleRequests = %d, want 0 (no oracle configured)", result.Stats.OracleRequests)
	}
}

func TestRefill_AddsOracleWordsAndWidensDomain(t *testing.T) {
	dict := dictionary.New(3)
	dict.Add("BAT")

	o := stub.New().RegisterPattern("...", "TAN")
	adapter := oracle.NewAdapter(o, oracle.NewBudget(-1, nil), oracle.PolicyFallback)

	s, g := newWordSquareSolver(t, dict, adapter, Config{})
	slots := g.Slots()
	domains := s.prop.NewDomains()
	s.used = make(map[string]struct{})

	var target gridmodel.SlotID
	for _, sl := range slots {
		if sl.Direction == gridmodel.Down && sl.StartCol == 2 {
			target = sl.ID
		}
	}
	domains[target] = dictionary.NewBitset(0)

	ok := s.refill(context.Background(), target, domains)
	if !ok {
		t.Fatal("expected refill to succeed")
	}
	if s.stats.OracleRequests != 1 {
		t.Errorf("OracleRequests = %d, want 1", s.stats.OracleRequests)
	}
	if s.stats.OracleWordsAdded < 1 {
		t.Errorf("OracleWordsAdded = %d, want >= 1", s.stats.OracleWordsAdded)
	}
	if domains[target].IsEmpty() {
		t.Error("expected the target slot's domain to be widened, not empty")
	}
	if _, ok := dict.IndexOf("TAN"); !ok {
		t.Error("expected refill to have added TAN to the dictionary")
	}
}

func TestRefill_ExhaustedBudgetWithFallback_ReturnsFalseNotFatal(t *testing.T) {
	dict := dictionary.New(3)
	o := stub.New().RegisterPattern("...", "TAN")
	adapter := oracle.NewAdapter(o, oracle.NewBudget(0, nil), oracle.PolicyFallback)

	s, g := newWordSquareSolver(t, dict, adapter, Config{})
	var target gridmodel.SlotID
	for _, sl := range g.Slots() {
		target = sl.ID
		break
	}
	domains := s.prop.NewDomains()
	s.used = make(map[string]struct{})

	ok := s.refill(context.Background(), target, domains)
	if ok {
		t.Error("expected refill to fail when the budget refuses the call")
	}
	if s.stats.OracleRequests != 0 {
		t.Errorf("OracleRequests = %d, want 0 (refusal happens before any call)", s.stats.OracleRequests)
	}
	if s.fatal != outcomeNone {
		t.Errorf("fatal = %v, want none (fallback policy should not surface OracleExhausted)", s.fatal)
	}
}

func TestRefill_ExhaustedBudgetWithFailPolicy_SetsFatal(t *testing.T) {
	dict := dictionary.New(3)
	o := stub.New().RegisterPattern("...", "TAN")
	adapter := oracle.NewAdapter(o, oracle.NewBudget(0, nil), oracle.PolicyFail)

	s, g := newWordSquareSolver(t, dict, adapter, Config{})
	var target gridmodel.SlotID
	for _, sl := range g.Slots() {
		target = sl.ID
		break
	}
	domains := s.prop.NewDomains()
	s.used = make(map[string]struct{})

	if s.refill(context.Background(), target, domains) {
		t.Error("expected refill to fail")
	}
	if s.fatal != OracleExhausted {
		t.Errorf("fatal = %v, want OracleExhausted", s.fatal)
	}
}

func TestSolve_DeadlineExceeded(t *testing.T) {
	dict := wordSquareDict()
	s, _ := newWordSquareSolver(t, dict, nil, Config{
		UseInference: true,
		Deadline:     1, // 1ns: breached before the first variable selection
	})

	result := s.Solve(context.Background())
	if result.Outcome != DeadlineExceeded {
		t.Errorf("Outcome = %v, want DeadlineExceeded", result.Outcome)
	}
}

func TestSolve_CancelFlag_StopsSearch(t *testing.T) {
	dict := wordSquareDict()
	s, _ := newWordSquareSolver(t, dict, nil, Config{
		UseInference: true,
		Cancel:       func() bool { return true },
	})

	result := s.Solve(context.Background())
	if result.Outcome != DeadlineExceeded {
		t.Errorf("Outcome = %v, want DeadlineExceeded (cancel shares the deadline signal)", result.Outcome)
	}
}

func TestOutcome_String(t *testing.T) {
	cases := map[Outcome]string{
		Solved:           "solved",
		NoSolution:       "no_solution",
		DeadlineExceeded: "deadline_exceeded",
		OracleExhausted:  "oracle_exhausted",
	}
	for outcome, want := range cases {
		if got := outcome.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", int(outcome), got, want)
		}
	}
}
