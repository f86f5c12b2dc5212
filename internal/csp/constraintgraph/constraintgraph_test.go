package constraintgraph

import (
	"testing"

	"github.com/crossplay/crossgen/internal/csp/gridmodel"
)

func TestBuild_CrossesOnOpenGrid(t *testing.T) {
	g := gridmodel.New(5, 3)
	slots := g.FindSlots()

	cg := Build(slots)

	for _, s := range slots {
		if got := cg.Degree(s.ID); got != 5 {
			t.Errorf("slot %d (%s): degree = %d, want 5", s.ID, s.Direction, got)
		}
	}
}

func TestCrossing_DetailIsConsistentBothDirections(t *testing.T) {
	g := gridmodel.New(5, 3)
	slots := g.FindSlots()
	cg := Build(slots)

	var across, down *gridmodel.Slot
	for _, s := range slots {
		if s.StartRow == 0 && s.StartCol == 0 && s.Direction == gridmodel.Across {
			across = s
		}
		if s.StartRow == 0 && s.StartCol == 0 && s.Direction == gridmodel.Down {
			down = s
		}
	}
	if across == nil || down == nil {
		t.Fatal("expected coincident across/down slots at (0,0)")
	}

	ab, ok := cg.Crossing(across.ID, down.ID)
	if !ok {
		t.Fatal("expected a crossing between the two (0,0) slots")
	}
	ba, ok := cg.Crossing(down.ID, across.ID)
	if !ok {
		t.Fatal("expected the reverse lookup to also find a crossing")
	}

	if ab.IndexInA != ba.IndexInB || ab.IndexInB != ba.IndexInA {
		t.Errorf("crossing detail not symmetric: ab=%+v ba=%+v", ab, ba)
	}
	if ab.IndexInA != 0 || ab.IndexInB != 0 {
		t.Errorf("slots sharing their start cell should cross at index 0/0, got %+v", ab)
	}
}

func TestNeighbors_UnknownSlotIsEmpty(t *testing.T) {
	g := gridmodel.New(5, 3)
	cg := Build(g.FindSlots())

	if got := cg.Neighbors(gridmodel.SlotID(9999)); len(got) != 0 {
		t.Errorf("Neighbors of unknown slot = %v, want empty", got)
	}
}

func TestBuild_NoCrossingsOnAllBlockGrid(t *testing.T) {
	g := gridmodel.New(5, 3)
	for r := 0; r < g.Size; r++ {
		for c := 0; c < g.Size; c++ {
			_ = g.SetBlock(r, c)
		}
	}
	slots := g.FindSlots()
	cg := Build(slots)

	if len(slots) != 0 {
		t.Fatalf("all-Block grid should have zero slots, got %d", len(slots))
	}
	if got := cg.Crossings(); len(got) != 0 {
		t.Errorf("expected zero crossings, got %d", len(got))
	}
}
