// Package constraintgraph builds the static crossing topology over a
// grid's slots: which slots cross which, and at what cell each crossing
// sits, per spec §4.3. The backbone is an undirected, unweighted
// github.com/katalvlaran/lvlath/graph.Graph with slot ids as string
// vertex ids; per-crossing detail lives in a side table because an
// lvlath Edge only carries an int64 Weight.
package constraintgraph

import (
	"strconv"

	"github.com/katalvlaran/lvlath/graph"

	"github.com/crossplay/crossgen/internal/csp/gridmodel"
)

// Crossing describes one cell shared by two slots: the cell is position
// IndexInA within slot A and IndexInB within slot B.
type Crossing struct {
	SlotA, SlotB       gridmodel.SlotID
	IndexInA, IndexInB int
}

type edgeKey struct {
	a, b gridmodel.SlotID
}

func normalizedKey(a, b gridmodel.SlotID) edgeKey {
	if a <= b {
		return edgeKey{a, b}
	}
	return edgeKey{b, a}
}

// ConstraintGraph is the static "who crosses whom" structure derived
// from a GridModel's slots. It never changes once built; AC3 and the
// Solver treat it as read-only.
type ConstraintGraph struct {
	backbone  *graph.Graph
	slots     map[gridmodel.SlotID]*gridmodel.Slot
	crossings map[edgeKey]Crossing
}

// Build constructs a ConstraintGraph from slots by detecting, for every
// pair of differently-directed slots, whether they share exactly one
// cell position.
func Build(slots []*gridmodel.Slot) *ConstraintGraph {
	cg := &ConstraintGraph{
		backbone:  graph.NewGraph(false, false),
		slots:     make(map[gridmodel.SlotID]*gridmodel.Slot, len(slots)),
		crossings: make(map[edgeKey]Crossing),
	}

	for _, s := range slots {
		cg.slots[s.ID] = s
		cg.backbone.AddVertex(&graph.Vertex{ID: vertexID(s.ID)})
	}

	for i, a := range slots {
		if a.Direction != gridmodel.Across {
			continue
		}
		for _, b := range slots {
			if b.Direction != gridmodel.Down {
				continue
			}
			idxA, idxB, ok := sharedCell(a, b)
			if !ok {
				continue
			}
			cg.backbone.AddEdge(vertexID(a.ID), vertexID(b.ID), 1)
			cg.crossings[normalizedKey(a.ID, b.ID)] = Crossing{
				SlotA: a.ID, SlotB: b.ID, IndexInA: idxA, IndexInB: idxB,
			}
		}
		_ = i
	}

	return cg
}

// sharedCell reports the position within a and within b of the single
// cell they share, if any.
func sharedCell(a, b *gridmodel.Slot) (indexInA, indexInB int, ok bool) {
	for i, ca := range a.Cells {
		for j, cb := range b.Cells {
			if ca == cb {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

func vertexID(id gridmodel.SlotID) string {
	return strconv.Itoa(int(id))
}

// Slot returns the slot for id, or nil if unknown.
func (cg *ConstraintGraph) Slot(id gridmodel.SlotID) *gridmodel.Slot {
	return cg.slots[id]
}

// Slots returns every slot in the graph, order unspecified.
func (cg *ConstraintGraph) Slots() []*gridmodel.Slot {
	out := make([]*gridmodel.Slot, 0, len(cg.slots))
	for _, s := range cg.slots {
		out = append(out, s)
	}
	return out
}

// Neighbors returns the ids of every slot crossing id.
func (cg *ConstraintGraph) Neighbors(id gridmodel.SlotID) []gridmodel.SlotID {
	verts := cg.backbone.Neighbors(vertexID(id))
	out := make([]gridmodel.SlotID, 0, len(verts))
	for _, v := range verts {
		n, err := strconv.Atoi(v.ID)
		if err != nil {
			continue
		}
		out = append(out, gridmodel.SlotID(n))
	}
	return out
}

// Degree returns the number of slots crossing id.
func (cg *ConstraintGraph) Degree(id gridmodel.SlotID) int {
	return len(cg.backbone.Neighbors(vertexID(id)))
}

// Crossing returns the crossing detail between a and b, if they cross.
func (cg *ConstraintGraph) Crossing(a, b gridmodel.SlotID) (Crossing, bool) {
	c, ok := cg.crossings[normalizedKey(a, b)]
	if !ok {
		return Crossing{}, false
	}
	if c.SlotA == a {
		return c, true
	}
	return Crossing{SlotA: a, SlotB: b, IndexInA: c.IndexInB, IndexInB: c.IndexInA}, true
}

// Crossings returns every crossing in the graph, order unspecified.
func (cg *ConstraintGraph) Crossings() []Crossing {
	out := make([]Crossing, 0, len(cg.crossings))
	for _, c := range cg.crossings {
		out = append(out, c)
	}
	return out
}
