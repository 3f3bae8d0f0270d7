package frechet

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/AntonBallmaier/Frechet-Isomap/curve"
)

// DiscreteFrechet is the classic min-max coupling distance: the
// discrete Fréchet distance over polyline vertices. It is stateless,
// so the zero value is ready to use.
type DiscreteFrechet struct{ capped }

// IntegralDiscreteFrechet replaces the max-accumulator with a sum,
// giving a distance sensitive to the whole coupling rather than just
// its worst step.
type IntegralDiscreteFrechet struct{ capped }

func (DiscreteFrechet) Distance(p, q *curve.Curve) (float64, error) {
	return discreteFrechetCap(p, q, math.Inf(1), math.Max)
}

func (DiscreteFrechet) DistanceCap(p, q *curve.Curve, max float64) (float64, error) {
	return discreteFrechetCap(p, q, max, math.Max)
}

func (IntegralDiscreteFrechet) Distance(p, q *curve.Curve) (float64, error) {
	return discreteFrechetCap(p, q, math.Inf(1), sum)
}

func (IntegralDiscreteFrechet) DistanceCap(p, q *curve.Curve, max float64) (float64, error) {
	return discreteFrechetCap(p, q, max, sum)
}

func sum(a, b float64) float64 { return a + b }

// discreteFrechetCap runs the classic dynamic program with two
// rolling rows (memory O(min(m1,m2))), normalized so the outer loop
// always runs over the longer curve, and a running row-minimum early
// exit against cap.
func discreteFrechetCap(p, q *curve.Curve, cap float64, accumulate func(a, b float64) float64) (float64, error) {
	if err := validateEqualDimension("frechet.discreteFrechet", p, q); err != nil {
		return 0, err
	}

	long, short := p, q
	if short.Len() > long.Len() {
		long, short = short, long
	}
	n, m := long.Len(), short.Len()

	dist := func(i, j int) float64 {
		return floats.Distance(long.Raw(i), short.Raw(j), 2)
	}

	prev := make([]float64, m)
	curRow := make([]float64, m)

	prev[0] = dist(0, 0)
	for j := 1; j < m; j++ {
		prev[j] = accumulate(prev[j-1], dist(0, j))
	}
	if rowMin(prev) > cap {
		return math.Inf(1), nil
	}

	for i := 1; i < n; i++ {
		curRow[0] = accumulate(prev[0], dist(i, 0))
		for j := 1; j < m; j++ {
			best := math.Min(prev[j], curRow[j-1])
			best = math.Min(best, prev[j-1])
			curRow[j] = accumulate(best, dist(i, j))
		}
		if rowMin(curRow) > cap {
			return math.Inf(1), nil
		}
		prev, curRow = curRow, prev
	}

	result := prev[m-1]
	if result > cap {
		return math.Inf(1), nil
	}
	return result, nil
}

func rowMin(row []float64) float64 {
	m := row[0]
	for _, v := range row[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
