package curve

import (
	"errors"
	"testing"

	"github.com/AntonBallmaier/Frechet-Isomap/xerr"
)

func TestNewRejectsShortInput(t *testing.T) {
	for _, vertices := range [][][]float64{
		nil,
		{},
		{{1, 2}},
	} {
		if _, err := New(vertices); err == nil {
			t.Errorf("New(%v): want error, got nil", vertices)
		}
	}
}

func TestNewRejectsMixedDimension(t *testing.T) {
	_, err := New([][]float64{{1, 2}, {1, 2, 3}})
	if err == nil {
		t.Fatal("New: want error for mixed dimension, got nil")
	}
	var xe *xerr.Error
	if !errors.As(err, &xe) {
		t.Fatalf("New: want *xerr.Error, got %T", err)
	}
	if xe.Kind != xerr.InvalidInput {
		t.Errorf("Kind = %v, want InvalidInput", xe.Kind)
	}
}

func TestAtIsIndependentCopy(t *testing.T) {
	c, err := New([][]float64{{1, 1}, {2, 2}, {3, 3}})
	if err != nil {
		t.Fatal(err)
	}
	v, err := c.At(1)
	if err != nil {
		t.Fatal(err)
	}
	v[0] = 999
	v2, _ := c.At(1)
	if v2[0] == 999 {
		t.Fatal("mutating At's result mutated the curve's internal storage")
	}
}

func TestAtOutOfRange(t *testing.T) {
	c, _ := New([][]float64{{1}, {2}})
	if _, err := c.At(-1); err == nil {
		t.Error("At(-1): want error")
	}
	if _, err := c.At(2); err == nil {
		t.Error("At(2): want error")
	}
}

func TestLongestSegment(t *testing.T) {
	c, err := New([][]float64{{0}, {1}, {4}, {4.5}})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := c.LongestSegment(), 3.0; got != want {
		t.Errorf("LongestSegment() = %v, want %v", got, want)
	}
	if c.LongestSegment() < 0 {
		t.Error("LongestSegment must be non-negative")
	}
}

func TestLenDimension(t *testing.T) {
	c, err := New([][]float64{{1, 2, 3}, {4, 5, 6}})
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
	if c.Dimension() != 3 {
		t.Errorf("Dimension() = %d, want 3", c.Dimension())
	}
}
