// Package mds implements classical multidimensional scaling by
// eigendecomposition of a double-centered squared-distance matrix,
// and landmark MDS's barycentric projection of non-landmark rows onto
// a landmark embedding. Both are grounded
// on gonum's stat/mds.TorgersonScaling (mat.SymDense double-centering,
// mat.EigenSym factorization, descending eigenvalue sort via
// blas64.Swap), generalized from "all n dimensions" to "top d of n".
package mds

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"

	"github.com/AntonBallmaier/Frechet-Isomap/xerr"
)

// degenerateEigenvalue is the threshold below which an eigenvalue's
// contribution to the landmark projection is treated as zero, for
// numerical stability.
const degenerateEigenvalue = 0.01

// Classical eigendecomposes the double-centered squared-distance
// matrix dist (an n x n symmetric,
// nonnegative matrix with zero diagonal) and return the top dim
// coordinate rows (coords[i][v] is the i-th coordinate of vertex v)
// together with the corresponding eigenvalues, each thresholded to be
// >= 0. Eigenvector sign is arbitrary.
func Classical(dist [][]float64, dim int) (coords [][]float64, eigenvalues []float64, err error) {
	const op = "mds.Classical"
	n := len(dist)
	if err := validateSquare(op, dist); err != nil {
		return nil, nil, err
	}
	if dim < 1 || dim > n {
		return nil, nil, xerr.InvalidRange(op, "target dimension out of range", float64(dim), 1, float64(n))
	}

	b := doubleCenter(dist)

	var eig mat.EigenSym
	if ok := eig.Factorize(b, true); !ok {
		return nil, nil, xerr.Invalid(op, "eigendecomposition failed to converge")
	}
	var vecs mat.Dense
	vecs.EigenvectorsSym(&eig)
	vals := eig.Values(nil)
	sort.Sort(byValueDescending{values: vals, vectors: vecs.RawMatrix()})

	coords = make([][]float64, dim)
	eigenvalues = make([]float64, dim)
	for i := 0; i < dim; i++ {
		lambda := vals[i]
		if lambda < 0 {
			lambda = 0
		}
		eigenvalues[i] = lambda
		scale := math.Sqrt(lambda)
		row := make([]float64, n)
		for v := 0; v < n; v++ {
			row[v] = scale * vecs.At(v, i)
		}
		coords[i] = row
	}
	return coords, eigenvalues, nil
}

// Landmark treats dist as an n x L rectangular distance matrix
// (n >= L) whose first L rows are the L x L landmark-to-landmark
// distances. It runs Classical on that
// submatrix, then barycentrically projects the remaining n-L rows
// using the landmark eigenpairs.
func Landmark(dist [][]float64, dim int) (coords [][]float64, eigenvalues []float64, err error) {
	const op = "mds.Landmark"
	n := len(dist)
	if n == 0 {
		return nil, nil, xerr.Invalid(op, "distance matrix must have at least one row")
	}
	l := len(dist[0])
	if n < l {
		return nil, nil, xerr.Invalid(op, "landmark count must not exceed the number of rows")
	}
	if dim < 1 || dim > n {
		return nil, nil, xerr.InvalidRange(op, "target dimension out of range", float64(dim), 1, float64(n))
	}
	landmarkDist := make([][]float64, l)
	for i := 0; i < l; i++ {
		if len(dist[i]) != l {
			return nil, nil, xerr.Invalid(op, "distance matrix rows must all have length L")
		}
		landmarkDist[i] = dist[i]
	}

	landmarkCoords, eigenvalues, err := Classical(landmarkDist, dim)
	if err != nil {
		return nil, nil, err
	}

	sq := make([][]float64, n)
	for i := range dist {
		row := make([]float64, l)
		for j, v := range dist[i] {
			row[j] = v * v
		}
		sq[i] = row
	}
	for j := 0; j < l; j++ {
		var mu float64
		for i := 0; i < l; i++ {
			mu += sq[i][j]
		}
		mu /= float64(l)
		for k := l; k < n; k++ {
			sq[k][j] -= mu
		}
	}

	coords = make([][]float64, dim)
	for i := 0; i < dim; i++ {
		row := make([]float64, n)
		copy(row[:l], landmarkCoords[i][:l])
		if eigenvalues[i] >= degenerateEigenvalue {
			lambda := eigenvalues[i]
			for k := l; k < n; k++ {
				var sum float64
				for j := 0; j < l; j++ {
					sum += (landmarkCoords[i][j] / lambda) * sq[k][j]
				}
				row[k] = -0.5 * sum
			}
		}
		// else: lambda effectively degenerate, non-landmark rows stay 0.
		coords[i] = row
	}
	return coords, eigenvalues, nil
}

// doubleCenter forms B = -1/2 . J . D^2 . J where J = I - 1/n . 11^T,
// following gonum's stat/mds.TorgersonScaling.
func doubleCenter(dist [][]float64) *mat.SymDense {
	n := len(dist)
	squared := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := dist[i][j]
			squared.SetSym(i, j, v*v)
		}
	}
	j := mat.NewSymDense(n, nil)
	s := -1 / float64(n)
	for i := 0; i < n; i++ {
		j.SetSym(i, i, 1+s)
		for k := i + 1; k < n; k++ {
			j.SetSym(i, k, s)
		}
	}
	var centered mat.Dense
	centered.Product(j, squared, j)

	b := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for k := i; k < n; k++ {
			b.SetSym(i, k, -0.5*centered.At(i, k))
		}
	}
	return b
}

// byValueDescending sorts eigenvalues (and their matching eigenvector
// columns) from largest to smallest, mirroring gonum's
// stat/mds.byValues.
type byValueDescending struct {
	values  []float64
	vectors blas64.General
}

func (e byValueDescending) Len() int           { return len(e.values) }
func (e byValueDescending) Less(i, j int) bool { return e.values[i] > e.values[j] }
func (e byValueDescending) Swap(i, j int) {
	e.values[i], e.values[j] = e.values[j], e.values[i]
	blas64.Swap(e.vectors.Rows,
		blas64.Vector{Inc: e.vectors.Stride, Data: e.vectors.Data[i:]},
		blas64.Vector{Inc: e.vectors.Stride, Data: e.vectors.Data[j:]},
	)
}

func validateSquare(op string, dist [][]float64) error {
	n := len(dist)
	if n == 0 {
		return xerr.Invalid(op, "distance matrix must have at least one row")
	}
	for i, row := range dist {
		if len(row) != n {
			return xerr.Invalid(op, "distance matrix must be square")
		}
		if row[i] != 0 {
			return xerr.Invalid(op, "distance matrix must have zero diagonal")
		}
		for j, v := range row {
			if v < 0 {
				return xerr.InvalidValue(op, "distance matrix must be nonnegative", v)
			}
			if math.Abs(v-dist[j][i]) > 1e-9 {
				return xerr.Invalid(op, "distance matrix must be symmetric")
			}
		}
	}
	return nil
}
