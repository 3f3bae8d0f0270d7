package embed

import (
	"math/rand"

	"github.com/AntonBallmaier/Frechet-Isomap/graph"
	"github.com/AntonBallmaier/Frechet-Isomap/graph/components"
	"github.com/AntonBallmaier/Frechet-Isomap/graph/knn"
	"github.com/AntonBallmaier/Frechet-Isomap/graph/shortestpath"
	"github.com/AntonBallmaier/Frechet-Isomap/xerr"
)

// Isomap is the Embedder strategy whose required distance matrix is
// the geodesic (graph shortest-path) distance over a k-nearest-
// neighbor graph, rather than the direct measure.
type Isomap[T any] struct {
	*core[T]

	k       int
	metric  indexMeasure[T]
	nnState *knn.State

	cachedGeodesic [][]float64
	cachedS        int
}

// NewIsomap builds an Isomap embedder over elements under measure,
// using k nearest neighbors to build the geodesic graph. k must be at
// least 1 and less than len(elements).
func NewIsomap[T any](elements []T, measure Measure[T], k int) (*Isomap[T], error) {
	const op = "embed.NewIsomap"
	c, err := newCore(elements, measure)
	if err != nil {
		return nil, err
	}
	if k < 1 || k >= c.n {
		return nil, xerr.InvalidRange(op, "neighbor count out of range", float64(k), 1, float64(c.n-1))
	}

	m := indexMeasure[T]{elements: c.elements, measure: measure}
	return &Isomap[T]{
		core:    c,
		k:       k,
		metric:  m,
		nnState: knn.NewState(c.n, m, rand.New(rand.NewSource(1))),
	}, nil
}

// SetNearestNeighborCount changes k, invalidating the cached geodesic
// matrix while preserving NN-descent's internal state so that a later
// call can refine rather than rebuild it.
func (iso *Isomap[T]) SetNearestNeighborCount(k int) error {
	const op = "embed.SetNearestNeighborCount"
	if k < 1 || k >= iso.n {
		return xerr.InvalidRange(op, "neighbor count out of range", float64(k), 1, float64(iso.n-1))
	}
	iso.k = k
	iso.cachedGeodesic = nil
	iso.cachedS = 0
	return nil
}

// Embed returns the dim x n coordinate matrix.
func (iso *Isomap[T]) Embed(dim int) ([][]float64, error) {
	coords, _, err := runEmbed[T](iso.core, iso, dim)
	return coords, err
}

// EmbeddingQuality returns the residual-variance scalar for the
// embedding at the given target dimension.
func (iso *Isomap[T]) EmbeddingQuality(dim int) (float64, error) {
	_, rv, err := runEmbed[T](iso.core, iso, dim)
	return rv, err
}

// Graph returns the k-nearest-neighbor graph after component
// connection. No graph is cached: each call extracts a new graph from
// the NN-descent state (refining that state first if k has grown) and
// connects its components.
func (iso *Isomap[T]) Graph() (*graph.Graph, error) {
	g, err := iso.nnState.Graph(iso.k)
	if err != nil {
		return nil, err
	}
	if _, err := components.Connect(g, iso.metric); err != nil {
		return nil, err
	}
	return g, nil
}

func (iso *Isomap[T]) requiredDistances(s int) ([][]float64, error) {
	if iso.cachedGeodesic != nil && s == iso.cachedS {
		return cloneMatrix(iso.cachedGeodesic), nil
	}

	g, err := iso.Graph()
	if err != nil {
		return nil, err
	}

	var geodesic [][]float64
	if iso.n <= shortestpath.FloydWarshallCutoff && s == iso.n {
		geodesic = shortestpath.FloydWarshall(g)
	} else {
		sources := make([]int, s)
		for i := range sources {
			sources[i] = i
		}
		geodesic, err = shortestpath.Dijkstra(g, sources)
		if err != nil {
			return nil, err
		}
	}

	iso.cachedGeodesic, iso.cachedS = geodesic, s
	return cloneMatrix(geodesic), nil
}
