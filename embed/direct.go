package embed

import (
	"github.com/AntonBallmaier/Frechet-Isomap/internal/parallel"
)

// DirectEmbedder is the Embedder strategy whose required-distance
// matrix is simply every pairwise direct measure evaluation, cached
// and grown as S increases.
type DirectEmbedder[T any] struct {
	*core[T]

	cached  [][]float64 // n x cachedS
	cachedS int
}

// NewDirectEmbedder builds a DirectEmbedder over elements under
// measure. elements is copied and permuted once internally.
func NewDirectEmbedder[T any](elements []T, measure Measure[T]) (*DirectEmbedder[T], error) {
	c, err := newCore(elements, measure)
	if err != nil {
		return nil, err
	}
	return &DirectEmbedder[T]{core: c}, nil
}

// Embed returns the dim x n coordinate matrix.
func (d *DirectEmbedder[T]) Embed(dim int) ([][]float64, error) {
	coords, _, err := runEmbed[T](d.core, d, dim)
	return coords, err
}

// EmbeddingQuality returns the residual-variance scalar for the
// embedding at the given target dimension.
func (d *DirectEmbedder[T]) EmbeddingQuality(dim int) (float64, error) {
	_, rv, err := runEmbed[T](d.core, d, dim)
	return rv, err
}

func (d *DirectEmbedder[T]) requiredDistances(s int) ([][]float64, error) {
	if d.cached != nil && s <= d.cachedS {
		return sliceColumns(d.cached, s), nil
	}
	if d.cached == nil {
		full, err := d.computeFull(s)
		if err != nil {
			return nil, err
		}
		d.cached, d.cachedS = full, s
		return cloneMatrix(full), nil
	}
	grown, err := d.growColumns(s)
	if err != nil {
		return nil, err
	}
	d.cached, d.cachedS = grown, s
	return cloneMatrix(grown), nil
}

// computeFull fills the n x s matrix from scratch. The s x s
// leading block (landmark-to-landmark, or the whole matrix when
// s == n) is filled by its lower triangle in parallel per row and
// mirrored; the remaining rows (non-landmark vertices) are filled
// directly since no symmetry is available there.
func (d *DirectEmbedder[T]) computeFull(s int) ([][]float64, error) {
	n := d.n
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, s)
	}

	var firstErr error
	parallel.Range(s, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			for j := 0; j < i; j++ {
				dist, err := d.measure.Distance(d.elements[i], d.elements[j])
				if err != nil {
					if firstErr == nil {
						firstErr = err
					}
					return
				}
				out[i][j] = dist
				out[j][i] = dist
			}
		}
	})
	if firstErr != nil {
		return nil, firstErr
	}

	if n > s {
		parallel.Range(n-s, func(lo, hi int) {
			for idx := lo; idx < hi; idx++ {
				i := s + idx
				for j := 0; j < s; j++ {
					dist, err := d.measure.Distance(d.elements[i], d.elements[j])
					if err != nil {
						if firstErr == nil {
							firstErr = err
						}
						return
					}
					out[i][j] = dist
				}
			}
		})
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}

// growColumns extends the cached matrix's column count from cachedS
// to s, reusing every previously computed column.
func (d *DirectEmbedder[T]) growColumns(s int) ([][]float64, error) {
	n := d.n
	oldS := d.cachedS
	next := make([][]float64, n)
	for i := range next {
		row := make([]float64, s)
		copy(row, d.cached[i][:oldS])
		next[i] = row
	}

	var firstErr error
	parallel.Range(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			for j := oldS; j < s; j++ {
				if i == j {
					next[i][j] = 0
					continue
				}
				dist, err := d.measure.Distance(d.elements[i], d.elements[j])
				if err != nil {
					if firstErr == nil {
						firstErr = err
					}
					return
				}
				next[i][j] = dist
			}
		}
	})
	return next, firstErr
}

func sliceColumns(m [][]float64, cols int) [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = append([]float64(nil), row[:cols]...)
	}
	return out
}

func cloneMatrix(m [][]float64) [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = append([]float64(nil), row...)
	}
	return out
}
