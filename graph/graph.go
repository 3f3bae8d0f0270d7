// Package graph implements a weighted undirected graph over integer
// vertex indices: an adjacency mapping with +Inf as the
// "no edge" sentinel, grounded on gonum's
// graph/simple.WeightedUndirectedGraph (symmetric edge storage keyed
// by a pair of int64 node IDs) but specialized to dense 0..n-1 vertex
// indices, since every caller in this module already works in that
// index space (curves, k-NN graphs, embeddings).
package graph

import (
	"math"

	"github.com/AntonBallmaier/Frechet-Isomap/xerr"
)

// Graph is a weighted undirected graph over vertex indices [0, n).
// The zero value is not usable; construct with New. External
// synchronization is required for writers while readers (including
// concurrent ToMatrix/Distance/Neighbors calls) run.
type Graph struct {
	n     int
	edges []map[int]float64
}

// New returns an edgeless graph over n vertices.
func New(n int) *Graph {
	edges := make([]map[int]float64, n)
	for i := range edges {
		edges[i] = make(map[int]float64)
	}
	return &Graph{n: n, edges: edges}
}

// N returns the number of vertices.
func (g *Graph) N() int { return g.n }

// AddEdge sets the weight of the undirected edge (u,v) to w. A
// negative w is rejected. w=+Inf removes the edge. A self-loop
// (u==v) is only permitted with w=0, matching δ(a,a)=0.
func (g *Graph) AddEdge(u, v int, w float64) error {
	const op = "graph.AddEdge"
	if err := g.checkVertex(op, u); err != nil {
		return err
	}
	if err := g.checkVertex(op, v); err != nil {
		return err
	}
	if w < 0 {
		return xerr.InvalidValue(op, "edge weight must be non-negative", w)
	}
	if u == v {
		if w != 0 {
			return xerr.Invalid(op, "self-loop weight must be zero")
		}
		return nil
	}
	if math.IsInf(w, 1) {
		delete(g.edges[u], v)
		delete(g.edges[v], u)
		return nil
	}
	g.edges[u][v] = w
	g.edges[v][u] = w
	return nil
}

// RemoveEdge deletes the edge (u,v), if any. It is a no-op if the
// edge does not exist.
func (g *Graph) RemoveEdge(u, v int) error {
	const op = "graph.RemoveEdge"
	if err := g.checkVertex(op, u); err != nil {
		return err
	}
	if err := g.checkVertex(op, v); err != nil {
		return err
	}
	delete(g.edges[u], v)
	delete(g.edges[v], u)
	return nil
}

// Distance returns the stored weight of (u,v), 0 if u==v, or +Inf if
// no edge exists.
func (g *Graph) Distance(u, v int) (float64, error) {
	const op = "graph.Distance"
	if err := g.checkVertex(op, u); err != nil {
		return 0, err
	}
	if err := g.checkVertex(op, v); err != nil {
		return 0, err
	}
	if u == v {
		return 0, nil
	}
	if w, ok := g.edges[u][v]; ok {
		return w, nil
	}
	return math.Inf(1), nil
}

// Neighbors returns an unordered view of the vertices incident to v.
func (g *Graph) Neighbors(v int) ([]int, error) {
	const op = "graph.Neighbors"
	if err := g.checkVertex(op, v); err != nil {
		return nil, err
	}
	out := make([]int, 0, len(g.edges[v]))
	for u := range g.edges[v] {
		out = append(out, u)
	}
	return out, nil
}

// Degree returns the number of edges incident to v.
func (g *Graph) Degree(v int) (int, error) {
	const op = "graph.Degree"
	if err := g.checkVertex(op, v); err != nil {
		return 0, err
	}
	return len(g.edges[v]), nil
}

// ToMatrix returns the dense n×n distance matrix: symmetric, zero
// diagonal, +Inf where no edge exists.
func (g *Graph) ToMatrix() [][]float64 {
	m := make([][]float64, g.n)
	for i := range m {
		row := make([]float64, g.n)
		for j := range row {
			if i == j {
				row[j] = 0
				continue
			}
			row[j] = math.Inf(1)
		}
		m[i] = row
	}
	for u := 0; u < g.n; u++ {
		for v, w := range g.edges[u] {
			m[u][v] = w
		}
	}
	return m
}

func (g *Graph) checkVertex(op string, v int) error {
	if v < 0 || v >= g.n {
		return xerr.OutOfRangeIndex(op, v, g.n)
	}
	return nil
}
