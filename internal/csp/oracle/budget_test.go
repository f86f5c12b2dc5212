package oracle

import "testing"

func TestBudget_CanCall_RespectsGlobalCap(t *testing.T) {
	b := NewBudget(2, nil)

	if !b.CanCall(KindPatternMatch) {
		t.Fatal("expected call to be allowed under empty budget")
	}
	b.Record(KindPatternMatch, 1, true)
	b.Record(KindThemedList, 1, true)

	if b.CanCall(KindPatternMatch) {
		t.Error("expected global cap of 2 to be exhausted after 2 calls")
	}
}

func TestBudget_CanCall_RespectsPerKindCap(t *testing.T) {
	b := NewBudget(-1, map[Kind]int{KindClueBatch: 1})

	b.Record(KindClueBatch, 1, true)
	if b.CanCall(KindClueBatch) {
		t.Error("expected per-kind cap of 1 to be exhausted")
	}
	if !b.CanCall(KindPatternMatch) {
		t.Error("other kinds should be unaffected by clue_batch's cap")
	}
}

func TestBudget_NegativeCapMeansUnlimited(t *testing.T) {
	b := NewBudget(-1, nil)
	for i := 0; i < 50; i++ {
		b.Record(KindPatternMatch, 1, true)
	}
	if !b.CanCall(KindPatternMatch) {
		t.Error("a negative cap should never exhaust")
	}
}

func TestBudget_ZeroCapRefusesImmediately(t *testing.T) {
	b := NewBudget(0, nil)
	if b.CanCall(KindPatternMatch) {
		t.Error("a zero global cap should permit no calls at all")
	}
}

func TestBudget_GlobalCapOfOneRefusesAfterOneCall(t *testing.T) {
	b := NewBudget(1, nil)

	if !b.CanCall(KindPatternMatch) {
		t.Fatal("expected the first call to be allowed")
	}
	b.Record(KindPatternMatch, 1, true)
	if b.CanCall(KindClueBatch) {
		t.Error("global cap of 1 should refuse a second call of any kind")
	}
}

func TestBudget_OnExhaustedFiresOnce(t *testing.T) {
	fired := 0
	b := NewBudget(1, nil)
	b.OnExhausted = func(kind Kind) { fired++ }

	b.Record(KindPatternMatch, 1, true)
	if fired != 1 {
		t.Errorf("OnExhausted fired %d times, want 1", fired)
	}
}

func TestBudget_HistoryRecordsEachCall(t *testing.T) {
	b := NewBudget(-1, nil)
	b.Record(KindPatternMatch, 3, true)
	b.Record(KindThemedList, 5, false)

	hist := b.History()
	if len(hist) != 2 {
		t.Fatalf("History() len = %d, want 2", len(hist))
	}
	if hist[0].Kind != KindPatternMatch || hist[0].Tokens != 3 || !hist[0].Success {
		t.Errorf("history[0] = %+v, unexpected", hist[0])
	}
	if hist[1].Kind != KindThemedList || hist[1].Success {
		t.Errorf("history[1] = %+v, unexpected", hist[1])
	}
}
