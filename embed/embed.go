// Package embed implements the Embedder orchestration layer: a shared
// core (fixed random permutation, landmark-count bookkeeping, the
// final classical/landmark MDS call and quality computation)
// specialized by two strategies, DirectEmbedder and Isomap, that
// differ only in how they produce the n x S required-distance
// matrix MDS is run on.
package embed

import (
	"math"
	"math/rand"

	"github.com/AntonBallmaier/Frechet-Isomap/mds"
	"github.com/AntonBallmaier/Frechet-Isomap/quality"
	"github.com/AntonBallmaier/Frechet-Isomap/xerr"
)

// Measure is the pairwise dissimilarity an Embedder is built over. It
// mirrors frechet.Measure's shape exactly (Distance and DistanceCap,
// generalized over an arbitrary element type) so that
// frechet.DiscreteFrechet and friends satisfy it without adaptation.
type Measure[T any] interface {
	Distance(a, b T) (float64, error)
	DistanceCap(a, b T, max float64) (float64, error)
}

// Stats is a read-only diagnostic snapshot of an Embedder's most
// recent embed/quality run, exposed for callers that want to inspect
// internals without re-deriving them.
type Stats struct {
	Eigenvalues    []float64
	N              int
	UsingLandmarks bool
	LandmarkCount  int
}

// core holds the state shared by every Embedder strategy: the
// element array copied and permuted once at construction (so that
// "first L" can serve as a random landmark sample), the measure, and
// landmark configuration.
type core[T any] struct {
	elements    []T // permuted copy
	measure     Measure[T]
	perm        []int // perm[i] = original index of the i-th permuted element
	inversePerm []int // inversePerm[original index] = permuted position
	n           int

	useLandmarks  bool
	landmarkCount int

	lastEigenvalues []float64
}

func newCore[T any](elements []T, measure Measure[T]) (*core[T], error) {
	const op = "embed.New"
	n := len(elements)
	if n < 2 {
		return nil, xerr.InvalidValue(op, "need at least two elements", float64(n))
	}

	perm := rand.Perm(n)
	inv := make([]int, n)
	permuted := make([]T, n)
	for i, p := range perm {
		permuted[i] = elements[p]
		inv[p] = i
	}

	return &core[T]{
		elements:    permuted,
		measure:     measure,
		perm:        perm,
		inversePerm: inv,
		n:           n,
	}, nil
}

// SetLandmarkCount enables landmark-based embedding with exactly l
// landmarks. l must be at least 2 and at most the element count.
func (c *core[T]) SetLandmarkCount(l int) error {
	const op = "embed.SetLandmarkCount"
	if l < 2 || l > c.n {
		return xerr.InvalidRange(op, "landmark count out of range", float64(l), 2, float64(c.n))
	}
	c.landmarkCount = l
	c.useLandmarks = true
	return nil
}

// EnableLandmarksWithDefault turns on landmark-based embedding using
// the default landmark count, L = min(n, max(5, floor(2*sqrt(n)))).
func (c *core[T]) EnableLandmarksWithDefault() {
	n := c.n
	l := int(2 * math.Sqrt(float64(n)))
	if l < 5 {
		l = 5
	}
	if l > n {
		l = n
	}
	c.landmarkCount = l
	c.useLandmarks = true
}

func (c *core[T]) startingPoints() int {
	if c.useLandmarks {
		return c.landmarkCount
	}
	return c.n
}

// Stats reports the embedder's configuration and the eigenvalues
// from its most recent Embed/EmbeddingQuality call (nil if neither
// has run yet).
func (c *core[T]) Stats() Stats {
	return Stats{
		Eigenvalues:    append([]float64(nil), c.lastEigenvalues...),
		N:              c.n,
		UsingLandmarks: c.useLandmarks,
		LandmarkCount:  c.landmarkCount,
	}
}

// requiredDistancer is the strategy hook each Embedder implements:
// produce the n x S matrix Embed's MDS stage runs on.
type requiredDistancer[T any] interface {
	requiredDistances(S int) ([][]float64, error)
}

// runEmbed implements Embed and EmbeddingQuality, sharing the single
// required-distance computation between them: compute S, fetch
// required, run the configured MDS variant, un-permute the
// coordinates, and derive residual variance
// from the same required matrix against the (still-permuted)
// embedding distances.
func runEmbed[T any](c *core[T], strat requiredDistancer[T], dim int) (coords [][]float64, residualVariance float64, err error) {
	const op = "embed.Embed"
	if dim < 1 || dim > c.n {
		return nil, 0, xerr.InvalidRange(op, "target dimension out of range", float64(dim), 1, float64(c.n))
	}

	s := c.startingPoints()
	required, err := strat.requiredDistances(s)
	if err != nil {
		return nil, 0, err
	}

	var permutedCoords [][]float64
	var eigenvalues []float64
	if c.useLandmarks {
		permutedCoords, eigenvalues, err = mds.Landmark(required, dim)
	} else {
		permutedCoords, eigenvalues, err = mds.Classical(required, dim)
	}
	if err != nil {
		return nil, 0, err
	}
	c.lastEigenvalues = eigenvalues

	embeddingDistances := make([][]float64, c.n)
	for i := 0; i < c.n; i++ {
		row := make([]float64, s)
		for j := 0; j < s; j++ {
			row[j] = euclidean(permutedCoords, i, j)
		}
		embeddingDistances[i] = row
	}
	rv, err := quality.ResidualVariance(required, embeddingDistances)
	if err != nil {
		return nil, 0, err
	}

	return c.unpermute(permutedCoords), rv, nil
}

func (c *core[T]) unpermute(coords [][]float64) [][]float64 {
	out := make([][]float64, len(coords))
	for i, row := range coords {
		unpermuted := make([]float64, c.n)
		for v := 0; v < c.n; v++ {
			unpermuted[v] = row[c.inversePerm[v]]
		}
		out[i] = unpermuted
	}
	return out
}

func euclidean(coords [][]float64, i, j int) float64 {
	var sum float64
	for _, row := range coords {
		d := row[i] - row[j]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// indexMeasure adapts a Measure[T] over the embedder's permuted
// element array into the index-based Metric contract that graph/knn
// and graph/components operate on.
type indexMeasure[T any] struct {
	elements []T
	measure  Measure[T]
}

func (m indexMeasure[T]) Distance(i, j int) (float64, error) {
	return m.measure.Distance(m.elements[i], m.elements[j])
}

func (m indexMeasure[T]) DistanceCap(i, j int, max float64) (float64, error) {
	return m.measure.DistanceCap(m.elements[i], m.elements[j], max)
}
