// Package quality implements the embedding-quality metric: one minus
// the squared Pearson correlation between two flattened distance
// matrices, grounded on gonum's stat.Correlation rather than a
// hand-rolled covariance computation.
package quality

import (
	"gonum.org/v1/gonum/stat"

	"github.com/AntonBallmaier/Frechet-Isomap/xerr"
)

// Correlation returns the Pearson correlation coefficient r between
// the flattened matrices a and b, both assumed row-major with
// identical dimensions.
func Correlation(a, b [][]float64) (float64, error) {
	const op = "quality.Correlation"
	flatA, err := flatten(op, a)
	if err != nil {
		return 0, err
	}
	flatB, err := flatten(op, b)
	if err != nil {
		return 0, err
	}
	if len(flatA) != len(flatB) {
		return 0, xerr.Invalid(op, "matrices must have the same dimensions")
	}

	return stat.Correlation(flatA, flatB, nil), nil
}

// ResidualVariance is 1 - r^2 where r is the Pearson correlation of
// the flattened matrices a and b. 0 means a
// perfect embedding; 1 means the two sets of distances are
// uncorrelated.
func ResidualVariance(a, b [][]float64) (float64, error) {
	r, err := Correlation(a, b)
	if err != nil {
		return 0, err
	}
	return 1 - r*r, nil
}

func flatten(op string, m [][]float64) ([]float64, error) {
	if len(m) == 0 {
		return nil, xerr.Invalid(op, "matrix must have at least one row")
	}
	cols := len(m[0])
	out := make([]float64, 0, len(m)*cols)
	for _, row := range m {
		if len(row) != cols {
			return nil, xerr.Invalid(op, "matrix rows must all have the same length")
		}
		out = append(out, row...)
	}
	return out, nil
}
