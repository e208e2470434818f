package core_test

import (
	"errors"
	"testing"

	"github.com/lvlath-go/typeflow/core"
)

func TestGraph_AddEdge_IndexConsistency(t *testing.T) {
	g := core.NewGraph[int, int, string]()

	e, err := g.AddEdge(1, 1, nil, 2, nil, "A")
	if err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	in := g.ByIn(1)
	out := g.ByOut(2)
	if len(in) != 1 || in[0] != e {
		t.Fatalf("ByIn(1) = %v, want [%v]", in, e)
	}
	if len(out) != 1 || out[0] != e {
		t.Fatalf("ByOut(2) = %v, want [%v]", out, e)
	}
	if g.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", g.Len())
	}
}

func TestGraph_AddEdge_DuplicatesCollapse(t *testing.T) {
	g := core.NewGraph[int, int, string]()

	e1, _ := g.AddEdge(1, 1, core.NewVariationSet(1), 2, nil, "A")
	e2, _ := g.AddEdge(1, 1, core.NewVariationSet(1), 2, nil, "A")

	if e1 != e2 {
		t.Fatalf("identical edges must collapse to the same pointer")
	}
	if g.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 after duplicate add", g.Len())
	}
}

func TestGraph_AddEdge_DistinctPayloadsDoNotCollapse(t *testing.T) {
	g := core.NewGraph[int, int, string]()

	g.AddEdge(1, 1, nil, 2, nil, "A")
	g.AddEdge(1, 1, nil, 2, nil, "B")

	if g.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", g.Len())
	}
}

func TestGraph_AddEdge_NegativeCostRejected(t *testing.T) {
	g := core.NewGraph[int, int, string]()

	_, err := g.AddEdge(-1, 1, nil, 2, nil, "A")
	if !errors.Is(err, core.ErrNegativeCost) {
		t.Fatalf("AddEdge(-1, ...) err = %v, want ErrNegativeCost", err)
	}
}

func TestGraph_Clear(t *testing.T) {
	g := core.NewGraph[int, int, string]()
	g.AddEdge(1, 1, nil, 2, nil, "A")
	g.Clear()

	if g.Len() != 0 {
		t.Fatalf("Len() = %d after Clear, want 0", g.Len())
	}
	if len(g.ByIn(1)) != 0 {
		t.Fatalf("ByIn(1) non-empty after Clear")
	}
}
