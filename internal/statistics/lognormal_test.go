package statistics

import (
	"math"
	"testing"
)

// almostEqual returns true if a and b are within epsilon of each other.
func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

// relClose returns true if got is within tol relative error of want.
func relClose(got, want, tol float64) bool {
	return math.Abs(got-want) <= tol*want
}

func TestComplementaryPercentile_DocumentedAnchors(t *testing.T) {
	d := NewLogNormal(5500, 1250)

	// The calibrated anchor table, ±1% relative tolerance.
	anchors := []struct {
		x    float64
		want float64
	}{
		{2240, 0.90},
		{3430, 0.75},
		{5500, 0.50},
		{8820, 0.25},
		{17400, 0.05},
	}

	for _, a := range anchors {
		got := d.ComplementaryPercentile(a.x)
		if !relClose(got, a.want, 0.01) {
			t.Errorf("ComplementaryPercentile(%.0f) = %.4f, want %.2f ±1%%", a.x, got, a.want)
		}
	}
}

func TestComplementaryPercentile_MedianIsHalf(t *testing.T) {
	// Holds for any valid calibration, not just the shipping one.
	calibrations := []struct {
		median, podr float64
	}{
		{5500, 1250},
		{3000, 1000},
		{10000, 1700},
		{1600, 800},
	}

	for _, c := range calibrations {
		d := NewLogNormal(c.median, c.podr)
		got := d.ComplementaryPercentile(c.median)
		if !relClose(got, 0.5, 0.01) {
			t.Errorf("calibration (%.0f, %.0f): ComplementaryPercentile(median) = %.4f, want 0.5 ±1%%",
				c.median, c.podr, got)
		}
		if !almostEqual(d.Median(), c.median, 1e-6) {
			t.Errorf("calibration (%.0f, %.0f): Median() = %.4f, want %.0f",
				c.median, c.podr, d.Median(), c.median)
		}
	}
}

func TestComplementaryPercentile_MonotoneNonincreasing(t *testing.T) {
	d := NewLogNormal(5500, 1250)

	prev := d.ComplementaryPercentile(0)
	for x := 1.0; x <= 1e6; x *= 1.3 {
		cur := d.ComplementaryPercentile(x)
		if cur > prev {
			t.Fatalf("not monotone: value rose from %.6f to %.6f at x=%.1f", prev, cur, x)
		}
		prev = cur
	}
}

func TestComplementaryPercentile_Bounded(t *testing.T) {
	d := NewLogNormal(5500, 1250)

	for x := 0.0; x <= 1e7; x = x*2 + 1 {
		got := d.ComplementaryPercentile(x)
		if got < 0 || got > 1 {
			t.Errorf("ComplementaryPercentile(%.1f) = %v out of [0,1]", x, got)
		}
	}
}

func TestComplementaryPercentile_Extremes(t *testing.T) {
	d := NewLogNormal(5500, 1250)

	// Instantaneous paint: nothing in the distribution is faster.
	if got := d.ComplementaryPercentile(0); got != 1 {
		t.Errorf("ComplementaryPercentile(0) = %v, want exactly 1", got)
	}

	// Far beyond any observed trace: effectively everything is faster.
	if got := d.ComplementaryPercentile(1e6); got >= 0.001 {
		t.Errorf("ComplementaryPercentile(1e6) = %v, want ~0", got)
	}
}
