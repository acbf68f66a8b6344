package statistics

import "math"

// LogNormal is a log-normal distribution model fitted to two calibration
// anchors. The zero value is not usable; construct with NewLogNormal.
type LogNormal struct {
	location float64 // μ: natural log of the distribution median
	shape    float64 // σ: standard deviation of the underlying normal
}

// NewLogNormal derives a log-normal model from a median anchor and a
// point-of-diminishing-returns anchor, both in the measurement's own
// units (milliseconds here). Requires median > pointOfDiminishingReturns > 0;
// the calibration is fixed policy, so ordering is the caller's contract.
//
// The derivation is closed form — no iterative fitting. The median pins
// the location (median = e^μ) and the ratio between the two anchors pins
// the shape:
//
//	ρ = ln(podr / median)
//	σ = √(1 − 3ρ − √((ρ − 3)² − 8)) / 2
//
// For the (5500, 1250) calibration this yields σ ≈ 0.7015, which
// reproduces the documented complementary-percentile anchors:
//
//	x=2240 → 0.90    x=3430 → 0.75    x=5500 → 0.50
//	x=8820 → 0.25    x=17400 → 0.05
func NewLogNormal(median, pointOfDiminishingReturns float64) LogNormal {
	logRatio := math.Log(pointOfDiminishingReturns / median)
	shape := math.Sqrt(1-3*logRatio-math.Sqrt((logRatio-3)*(logRatio-3)-8)) / 2
	return LogNormal{
		location: math.Log(median),
		shape:    shape,
	}
}

// ComplementaryPercentile returns 1 − CDF(x) under the model: the
// fraction of the distribution slower than x, in [0,1]. Larger x (slower)
// yields a smaller value. x = 0 maps to exactly 1.
//
// Pure function; safe for concurrent use.
func (d LogNormal) ComplementaryPercentile(x float64) float64 {
	standardized := (math.Log(x) - d.location) / (math.Sqrt2 * d.shape)
	return (1 - math.Erf(standardized)) / 2
}

// Median returns the measurement value at which the complementary
// percentile crosses 0.5.
func (d LogNormal) Median() float64 {
	return math.Exp(d.location)
}
