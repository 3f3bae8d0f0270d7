// Package curve implements the Polyline value type: an ordered
// sequence of vertices in R^d joined by line segments, not closed.
// Construction validates length and uniform dimensionality;
// everything else about a Curve is immutable.
package curve

import (
	"gonum.org/v1/gonum/floats"

	"github.com/AntonBallmaier/Frechet-Isomap/xerr"
)

// Curve is an ordered sequence of m >= 2 vertices in R^d. Vertices are
// stored row-major (vertex index, then coordinate index).
type Curve struct {
	vertices  [][]float64
	dimension int
}

// New validates and wraps vertices as a Curve. It rejects a nil/empty
// sequence, fewer than two vertices, and vertices of mismatched
// dimensionality. The vertex data is copied, so later mutation of the
// caller's slices does not alias into the Curve.
func New(vertices [][]float64) (*Curve, error) {
	if len(vertices) < 2 {
		return nil, xerr.InvalidValue("curve.New", "a curve needs at least 2 vertices", float64(len(vertices)))
	}
	d := len(vertices[0])
	if d == 0 {
		return nil, xerr.Invalid("curve.New", "vertices must have at least one coordinate")
	}
	cp := make([][]float64, len(vertices))
	for i, v := range vertices {
		if len(v) != d {
			return nil, xerr.Invalid("curve.New", "all vertices must share the same dimension")
		}
		row := make([]float64, d)
		copy(row, v)
		cp[i] = row
	}
	return &Curve{vertices: cp, dimension: d}, nil
}

// Len returns the number of vertices (m).
func (c *Curve) Len() int { return len(c.vertices) }

// Dimension returns d, the shared coordinate count of every vertex.
func (c *Curve) Dimension() int { return c.dimension }

// At returns an independent copy of the i-th vertex; mutating the
// result never aliases into c.
func (c *Curve) At(i int) ([]float64, error) {
	if i < 0 || i >= len(c.vertices) {
		return nil, xerr.OutOfRangeIndex("curve.At", i, len(c.vertices))
	}
	out := make([]float64, c.dimension)
	copy(out, c.vertices[i])
	return out, nil
}

// raw returns the internal, non-copied vertex slice. It exists for
// use by other packages in this module that consume a Curve on a hot
// path (distance computations) and must not allocate per access;
// callers must never mutate the result.
func (c *Curve) raw(i int) []float64 { return c.vertices[i] }

// Raw exposes the internal, non-copied vertex storage to collaborating
// packages in this module (frechet, in particular, runs tight
// numerical loops over every vertex pair and cannot afford a copy per
// access). Callers outside this module should use At instead.
func (c *Curve) Raw(i int) []float64 { return c.raw(i) }

// LongestSegment returns max_i ||v[i+1] - v[i]||, the longest edge of
// the polyline.
func (c *Curve) LongestSegment() float64 {
	var longest float64
	for i := 0; i+1 < len(c.vertices); i++ {
		d := floats.Distance(c.vertices[i], c.vertices[i+1], 2)
		if d > longest {
			longest = d
		}
	}
	return longest
}
