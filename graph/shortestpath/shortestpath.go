// Package shortestpath implements two all-pairs / multi-source
// shortest-path algorithms: Dijkstra, run once per source and
// parallelized across sources, and Floyd-Warshall, used below the
// n<=210 cutoff when every vertex is a source.
package shortestpath

import (
	"math"

	"github.com/AntonBallmaier/Frechet-Isomap/fibheap"
	"github.com/AntonBallmaier/Frechet-Isomap/graph"
	"github.com/AntonBallmaier/Frechet-Isomap/internal/parallel"
)

// FloydWarshallCutoff is the largest vertex count at which the
// Embedder prefers Floyd-Warshall over per-source Dijkstra when every
// vertex is a source.
const FloydWarshallCutoff = 210

// Dijkstra computes the distance matrix D[v][s] for s ranging over
// sources (each an index in [0, g.N())), running one Fibonacci-heap
// Dijkstra search per source. Sources are independent and are
// searched in parallel. It panics if g has a negative edge weight,
// matching gonum's own Dijkstra convention (graph/path.DijkstraFrom).
func Dijkstra(g *graph.Graph, sources []int) ([][]float64, error) {
	n := g.N()
	result := make([][]float64, n)
	for v := range result {
		result[v] = make([]float64, len(sources))
	}

	var firstErr error
	parallel.Range(len(sources), func(lo, hi int) {
		for si := lo; si < hi; si++ {
			col, err := dijkstraSingleSource(g, sources[si])
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			for v := 0; v < n; v++ {
				result[v][si] = col[v]
			}
		}
	})
	return result, firstErr
}

func dijkstraSingleSource(g *graph.Graph, source int) ([]float64, error) {
	n := g.N()
	dist := make([]float64, n)
	settled := make([]bool, n)
	handles := make([]fibheap.Handle, n)

	h := fibheap.New()
	for v := 0; v < n; v++ {
		p := math.Inf(1)
		if v == source {
			p = 0
		}
		dist[v] = p
		handles[v] = h.Enqueue(v, p)
	}

	for h.Len() > 0 {
		val, d := h.DequeueMin()
		cur := val.(int)
		if settled[cur] {
			continue
		}
		settled[cur] = true
		if math.IsInf(d, 1) {
			continue
		}

		neighbors, err := g.Neighbors(cur)
		if err != nil {
			return nil, err
		}
		for _, next := range neighbors {
			if settled[next] {
				continue
			}
			w, err := g.Distance(cur, next)
			if err != nil {
				return nil, err
			}
			if w < 0 {
				panic("shortestpath: negative edge weight")
			}
			tentative := d + w
			if tentative < dist[next] {
				dist[next] = tentative
				h.DecreaseKey(handles[next], tentative)
			}
		}
	}
	return dist, nil
}

// FloydWarshall computes the full n x n all-pairs shortest-path
// matrix by the classical O(n^3) triple loop.
func FloydWarshall(g *graph.Graph) [][]float64 {
	n := g.N()
	d := g.ToMatrix()

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if math.IsInf(d[i][k], 1) {
				continue
			}
			for j := 0; j < n; j++ {
				through := d[i][k] + d[k][j]
				if through < d[i][j] {
					d[i][j] = through
				}
			}
		}
	}
	return d
}
