package mds

import (
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

func euclideanDistanceMatrix(points [][]float64) [][]float64 {
	n := len(points)
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d[i][j] = floats.Distance(points[i], points[j], 2)
		}
	}
	return d
}

func embeddingDistance(coords [][]float64, a, b int) float64 {
	pa := make([]float64, len(coords))
	pb := make([]float64, len(coords))
	for i, row := range coords {
		pa[i], pb[i] = row[a], row[b]
	}
	return floats.Distance(pa, pb, 2)
}

func TestClassicalReproducesEuclideanDistances(t *testing.T) {
	points := [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {2, 3}}
	d := euclideanDistanceMatrix(points)

	coords, _, err := Classical(d, 2)
	if err != nil {
		t.Fatalf("Classical: %v", err)
	}

	for i := range points {
		for j := range points {
			want := d[i][j]
			got := embeddingDistance(coords, i, j)
			if !scalar.EqualWithinAbsOrRel(got, want, 1e-4, 1e-4) {
				t.Errorf("d(%d,%d) = %v, want %v", i, j, got, want)
			}
		}
	}
}

func TestClassicalRejectsNonSquare(t *testing.T) {
	_, _, err := Classical([][]float64{{0, 1}, {1, 0}, {1, 2}}, 1)
	if err == nil {
		t.Fatal("want error for non-square matrix")
	}
}

func TestClassicalRejectsNonzeroDiagonal(t *testing.T) {
	_, _, err := Classical([][]float64{{1, 1}, {1, 0}}, 1)
	if err == nil {
		t.Fatal("want error for nonzero diagonal")
	}
}

func TestLandmarkReproducesColumnDistances(t *testing.T) {
	points := [][]float64{
		{0, 0}, {3, 0}, {0, 4}, // landmarks
		{1, 1}, {2, 2}, {1, 3},
	}
	full := euclideanDistanceMatrix(points)
	l := 3
	dist := make([][]float64, len(points))
	for i := range points {
		dist[i] = append([]float64(nil), full[i][:l]...)
	}

	coords, _, err := Landmark(dist, 2)
	if err != nil {
		t.Fatalf("Landmark: %v", err)
	}

	for k := l; k < len(points); k++ {
		for j := 0; j < l; j++ {
			want := dist[k][j]
			got := embeddingDistance(coords, k, j)
			if !scalar.EqualWithinAbsOrRel(got, want, 1e-4, 1e-4) {
				t.Errorf("d(%d,%d) = %v, want %v", k, j, got, want)
			}
		}
	}
}
