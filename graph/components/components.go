// Package components implements connected-component discovery by
// iterative DFS, and a Kruskal-style connect operation
// that joins disconnected components via minimum cross-component
// edges under an externally supplied, interruption-capable measure.
package components

import (
	"math"
	"sort"

	"github.com/AntonBallmaier/Frechet-Isomap/graph"
)

// Find returns the connected components of g, sorted by size
// descending (the largest, at index 0, is the "main component").
func Find(g *graph.Graph) ([][]int, error) {
	n := g.N()
	visited := make([]bool, n)
	var comps [][]int

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		var comp []int
		stack := []int{start}
		visited[start] = true
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, v)
			neighbors, err := g.Neighbors(v)
			if err != nil {
				return nil, err
			}
			for _, u := range neighbors {
				if !visited[u] {
					visited[u] = true
					stack = append(stack, u)
				}
			}
		}
		comps = append(comps, comp)
	}

	sort.Slice(comps, func(i, j int) bool { return len(comps[i]) > len(comps[j]) })
	return comps, nil
}

// IsConnected reports whether g has exactly one connected component.
func IsConnected(g *graph.Graph) (bool, error) {
	comps, err := Find(g)
	if err != nil {
		return false, err
	}
	return len(comps) <= 1, nil
}

// Metric is the interruption-capable pairwise measure connect uses to
// price candidate cross-component edges, indexed by vertex.
type Metric interface {
	DistanceCap(i, j int, max float64) (float64, error)
}

type candidateEdge struct {
	ci, cj int // component indices
	a, b   int // vertex indices realizing the minimum
	d      float64
}

// Connect runs while g is disconnected: find the closest
// inter-component vertex pair for every pair of components,
// then Kruskal-join components cheapest-first until one remains,
// adding each selected edge to g. It returns the number of edges
// added.
func Connect(g *graph.Graph, metric Metric) (int, error) {
	comps, err := Find(g)
	if err != nil {
		return 0, err
	}
	if len(comps) <= 1 {
		return 0, nil
	}

	candidates := make([]candidateEdge, 0, len(comps)*(len(comps)-1)/2)
	for ci := 0; ci < len(comps); ci++ {
		for cj := ci + 1; cj < len(comps); cj++ {
			a, b, d, err := closestPair(comps[ci], comps[cj], metric)
			if err != nil {
				return 0, err
			}
			candidates = append(candidates, candidateEdge{ci: ci, cj: cj, a: a, b: b, d: d})
		}
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].d < candidates[j].d })

	owner := make([]int, len(comps))
	for i := range owner {
		owner[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for owner[x] != x {
			owner[x] = owner[owner[x]]
			x = owner[x]
		}
		return x
	}

	added := 0
	remaining := len(comps)
	for _, c := range candidates {
		if remaining == 1 {
			break
		}
		ri, rj := find(c.ci), find(c.cj)
		if ri == rj {
			continue
		}
		if err := g.AddEdge(c.a, c.b, c.d); err != nil {
			return added, err
		}
		owner[ri] = rj
		added++
		remaining--
	}
	return added, nil
}

// closestPair finds the minimum-distance pair (a in compA, b in
// compB) under metric, using a running best-so-far cap to let
// DistanceCap short-circuit.
func closestPair(compA, compB []int, metric Metric) (int, int, float64, error) {
	best := math.Inf(1)
	bestA, bestB := compA[0], compB[0]
	for _, a := range compA {
		for _, b := range compB {
			d, err := metric.DistanceCap(a, b, best)
			if err != nil {
				return 0, 0, 0, err
			}
			if d < best {
				best, bestA, bestB = d, a, b
			}
		}
	}
	return bestA, bestB, best, nil
}
