package stats

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMean(t *testing.T) {
	if got := Mean([]float64{1, 2, 3, 4}); !almostEqual(got, 2.5) {
		t.Errorf("Mean = %g", got)
	}
	if got := Mean(nil); !math.IsNaN(got) {
		t.Errorf("Mean of empty = %g, expected NaN", got)
	}
}

func TestQuantile(t *testing.T) {
	xs := []float64{4, 1, 3, 2}

	cases := []struct {
		p    float64
		want float64
	}{
		{0, 1},
		{0.25, 1.75},
		{0.5, 2.5},
		{0.75, 3.25},
		{1, 4},
	}
	for _, tc := range cases {
		if got := Quantile(xs, tc.p); !almostEqual(got, tc.want) {
			t.Errorf("Quantile(%g) = %g, expected %g", tc.p, got, tc.want)
		}
	}

	// Input must not be reordered.
	if xs[0] != 4 || xs[3] != 2 {
		t.Error("Quantile mutated its input")
	}
}

func TestQuantileSingleElement(t *testing.T) {
	for _, p := range []float64{0, 0.5, 1} {
		if got := Quantile([]float64{7}, p); got != 7 {
			t.Errorf("Quantile(%g) = %g", p, got)
		}
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{1, 2, 3, 4, 5})
	if s.Min != 1 || s.Max != 5 || !almostEqual(s.Median, 3) || !almostEqual(s.Mean, 3) {
		t.Errorf("Summarize = %+v", s)
	}
	if !almostEqual(s.Q1, 2) || !almostEqual(s.Q3, 4) {
		t.Errorf("quartiles = %g, %g", s.Q1, s.Q3)
	}
}
