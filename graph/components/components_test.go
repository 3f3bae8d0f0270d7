package components

import (
	"math"
	"testing"

	"github.com/AntonBallmaier/Frechet-Isomap/graph"
)

func nineVertexGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New(9)
	edges := [][3]float64{
		{0, 1, 14}, {0, 3, 22}, {0, 4, 4}, {1, 2, 16}, {1, 6, 3},
		{2, 3, 12}, {3, 4, 12}, {4, 5, 10}, {7, 8, 5},
	}
	for _, e := range edges {
		if err := g.AddEdge(int(e[0]), int(e[1]), e[2]); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}
	return g
}

func TestFindComponents(t *testing.T) {
	g := nineVertexGraph(t)
	comps, err := Find(g)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(comps) != 2 {
		t.Fatalf("got %d components, want 2", len(comps))
	}
	if len(comps[0]) != 7 || len(comps[1]) != 2 {
		t.Errorf("got sizes %d, %d, want 7, 2 (largest first)", len(comps[0]), len(comps[1]))
	}

	connected, err := IsConnected(g)
	if err != nil {
		t.Fatal(err)
	}
	if connected {
		t.Error("IsConnected() = true, want false")
	}
}

// taxiMetric implements the scenario's δ(a,b) = |a-4| + |b-7| + 2.
type taxiMetric struct{}

func (taxiMetric) DistanceCap(i, j int, max float64) (float64, error) {
	d := math.Abs(float64(i)-4) + math.Abs(float64(j)-7) + 2
	if d <= max {
		return d, nil
	}
	return math.Inf(1), nil
}

func TestConnect(t *testing.T) {
	g := nineVertexGraph(t)

	added, err := Connect(g, taxiMetric{})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if added != 1 {
		t.Errorf("got %d edges added, want 1 (#components - 1)", added)
	}

	connected, err := IsConnected(g)
	if err != nil {
		t.Fatal(err)
	}
	if !connected {
		t.Error("graph not connected after Connect")
	}

	d, err := g.Distance(4, 7)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(d-2) > 1e-9 {
		t.Errorf("Distance(4,7) = %v, want 2", d)
	}
}

func TestConnectNoOpWhenAlreadyConnected(t *testing.T) {
	g := graph.New(3)
	mustAdd(t, g, 0, 1, 1)
	mustAdd(t, g, 1, 2, 1)
	added, err := Connect(g, taxiMetric{})
	if err != nil {
		t.Fatal(err)
	}
	if added != 0 {
		t.Errorf("got %d, want 0", added)
	}
}

func mustAdd(t *testing.T, g *graph.Graph, u, v int, w float64) {
	t.Helper()
	if err := g.AddEdge(u, v, w); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
}
