package graph

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/AntonBallmaier/Frechet-Isomap/xerr"
)

func TestAddEdgeRejectsNegativeWeight(t *testing.T) {
	g := New(3)
	err := g.AddEdge(0, 1, -1)
	var xe *xerr.Error
	if !errors.As(err, &xe) || xe.Kind != xerr.InvalidInput {
		t.Fatalf("got %v, want InvalidInput", err)
	}
}

func TestAddEdgeRejectsNonZeroSelfLoop(t *testing.T) {
	g := New(3)
	err := g.AddEdge(1, 1, 2)
	var xe *xerr.Error
	if !errors.As(err, &xe) || xe.Kind != xerr.InvalidInput {
		t.Fatalf("got %v, want InvalidInput", err)
	}
}

func TestAddEdgeInfinityRemoves(t *testing.T) {
	g := New(3)
	must(t, g.AddEdge(0, 1, 5))
	must(t, g.AddEdge(0, 1, math.Inf(1)))
	d, err := g.Distance(0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(d, 1) {
		t.Errorf("got %v, want +Inf", d)
	}
}

func TestRoundTripAddRemove(t *testing.T) {
	g := New(4)
	before := g.ToMatrix()
	must(t, g.AddEdge(0, 2, 3.5))
	must(t, g.RemoveEdge(0, 2))
	after := g.ToMatrix()
	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("round trip changed the distance matrix (-before +after):\n%s", diff)
	}
}

func TestDistanceSymmetricAndDiagonalZero(t *testing.T) {
	g := New(3)
	must(t, g.AddEdge(0, 1, 4))
	for v := 0; v < 3; v++ {
		d, err := g.Distance(v, v)
		if err != nil || d != 0 {
			t.Errorf("Distance(%d,%d) = %v, %v, want 0, nil", v, v, d, err)
		}
	}
	d01, _ := g.Distance(0, 1)
	d10, _ := g.Distance(1, 0)
	if d01 != d10 {
		t.Errorf("Distance not symmetric: %v vs %v", d01, d10)
	}
}

func TestNeighborsMatchesNonInfiniteWeights(t *testing.T) {
	g := New(4)
	must(t, g.AddEdge(0, 1, 1))
	must(t, g.AddEdge(0, 2, 2))
	ns, err := g.Neighbors(0)
	if err != nil {
		t.Fatal(err)
	}
	want := map[int]bool{1: true, 2: true}
	if len(ns) != len(want) {
		t.Fatalf("got %v, want keys of %v", ns, want)
	}
	for _, v := range ns {
		if !want[v] {
			t.Errorf("unexpected neighbor %d", v)
		}
	}
}

func TestDistanceOutOfRange(t *testing.T) {
	g := New(2)
	_, err := g.Distance(5, 0)
	var xe *xerr.Error
	if !errors.As(err, &xe) || xe.Kind != xerr.OutOfRange {
		t.Fatalf("got %v, want OutOfRange", err)
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
