package audit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"github.com/HamzaFarooq007/lighthouse/internal/statistics"
	"github.com/HamzaFarooq007/lighthouse/internal/trace"
	"github.com/HamzaFarooq007/lighthouse/pkg/report"
)

// Scoring calibration, in milliseconds. Fixed policy derived from the
// distribution of Speed Index values across observed traces: the median
// scores 50, and improvements below the point of diminishing returns
// barely move the score.
const (
	ScoringMedian                    = 5500
	ScoringPointOfDiminishingReturns = 1250
)

// notFoundMessage is the fixed debug message for an absent or malformed
// measurement.
const notFoundMessage = "Navigation and first paint timings not found."

// Meta is the static descriptive metadata for this audit, exposed for
// the reporting layer.
var Meta = report.Meta{
	Category:     "Performance",
	Name:         "speed-index-metric",
	Description:  "Speed Index",
	OptimalValue: "1,000",
}

// model is built once from the fixed calibration. Immutable; shared by
// all invocations.
var model = statistics.NewLogNormal(ScoringMedian, ScoringPointOfDiminishingReturns)

// ComputeScore resolves the page's Speed Index from provider and maps it
// onto the 0–100 scale. One attempt per invocation; invocations share no
// mutable state and may run concurrently.
//
// All failure paths converge to the same shape: score -1 and a debug
// message. Provider errors become messages, an ErrNotFound (or a
// non-finite measurement) becomes the fixed not-found message, and a
// panicking provider is recovered into a failure result.
func ComputeScore(ctx context.Context, provider trace.Provider) (res report.Result) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("audit: measurement provider panicked",
				"audit", Meta.Name, "panic", r)
			res = failure(fmt.Sprintf("speed index measurement failed: %v", r))
		}
	}()

	x, err := provider.SpeedIndex(ctx)
	switch {
	case errors.Is(err, trace.ErrNotFound):
		slog.Warn("audit: no speed index measurement", "audit", Meta.Name, "err", err)
		return failure(notFoundMessage)
	case err != nil:
		slog.Warn("audit: measurement retrieval failed", "audit", Meta.Name, "err", err)
		return failure(err.Error())
	case math.IsNaN(x) || math.IsInf(x, 0) || x < 0:
		slog.Warn("audit: measurement is not a valid timing", "audit", Meta.Name, "value", x)
		return failure(notFoundMessage)
	}

	p := model.ComplementaryPercentile(x)
	raw := int64(math.Round(x))
	return report.Result{
		Score:        clamp(int(math.Round(100*p)), 0, 100),
		RawValue:     &raw,
		DisplayValue: formatMilliseconds(raw),
	}
}

// failure builds the failure-shaped result.
func failure(msg string) report.Result {
	return report.Result{
		Score:        report.FailureScore,
		DebugMessage: msg,
	}
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// formatMilliseconds renders ms with thousands separators, e.g. "5,500 ms".
func formatMilliseconds(ms int64) string {
	digits := strconv.FormatInt(ms, 10)
	out := make([]byte, 0, len(digits)+len(digits)/3+3)
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}
	return string(out) + " ms"
}
