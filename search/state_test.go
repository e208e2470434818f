package search

import (
	"testing"

	"github.com/lvlath-go/typeflow/core"
)

func TestState_LessOrdersByCostThenConsumedThenAdded(t *testing.T) {
	edge := &core.Edge[int, int, int]{KeyIn: 1, KeyOut: 2, Payload: 1}

	cheap := newState[int, int, int](edge, nil, nil, 0, 0)
	cheap.Cost = 1

	expensive := newState[int, int, int](edge, nil, nil, 0, 0)
	expensive.Cost = 2

	if !cheap.less(expensive) {
		t.Fatalf("cheaper state must sort first")
	}
	if expensive.less(cheap) {
		t.Fatalf("more expensive state must not sort first")
	}

	sameCostMoreConsumed := newState[int, int, int](edge, nil, nil, 3, 0)
	sameCostMoreConsumed.Cost = 1
	sameCostLessConsumed := newState[int, int, int](edge, nil, nil, 1, 0)
	sameCostLessConsumed.Cost = 1

	if !sameCostMoreConsumed.less(sameCostLessConsumed) {
		t.Fatalf("among equal cost, more variations consumed must sort first")
	}

	moreAdded := newState[int, int, int](edge, nil, nil, 1, 2)
	moreAdded.Cost = 1
	lessAdded := newState[int, int, int](edge, nil, nil, 1, 1)
	lessAdded.Cost = 1

	if !moreAdded.less(lessAdded) {
		t.Fatalf("among equal cost and consumed, more variations added must sort first")
	}
}

func TestNewState_AccumulatesFromParent(t *testing.T) {
	edgeA := &core.Edge[int, int, int]{KeyIn: 1, KeyOut: 2, Cost: 1, Payload: 1}
	edgeB := &core.Edge[int, int, int]{KeyIn: 2, KeyOut: 3, Cost: 2, Payload: 2}

	root := newState[int, int, int](edgeA, nil, nil, 1, 2)
	child := newState[int, int, int](edgeB, root, nil, 1, 0)

	if child.Cost != 3 {
		t.Fatalf("Cost = %d, want 3 (1+2)", child.Cost)
	}
	if child.VarConsumed != 2 {
		t.Fatalf("VarConsumed = %d, want 2 (1 local + 1 parent)", child.VarConsumed)
	}
	if child.VarAdded != 2 {
		t.Fatalf("VarAdded = %d, want 2 (0 local + 2 parent)", child.VarAdded)
	}
}
