package trace

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// metricsArtifact is the computed-metrics JSON written by the lab runner
// after it has processed a trace. Only the field this audit consumes is
// decoded; the artifact usually carries other metrics alongside.
type metricsArtifact struct {
	SpeedIndex *float64 `json:"speedIndex"`
}

// artifactsProvider reads the measurement from a computed-metrics
// artifact file on disk.
type artifactsProvider struct {
	path string
}

// SpeedIndex reads and decodes the artifact file. Every failure mode —
// unreadable file, invalid JSON, absent or non-finite field — maps to
// ErrNotFound, since they all mean the same thing to the audit: no
// measurement exists for this page.
func (p *artifactsProvider) SpeedIndex(ctx context.Context) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	data, err := os.ReadFile(p.path)
	if err != nil {
		return 0, fmt.Errorf("%w: read artifact %q: %v", ErrNotFound, p.path, err)
	}

	var art metricsArtifact
	if err := json.Unmarshal(data, &art); err != nil {
		return 0, fmt.Errorf("%w: parse artifact %q: %v", ErrNotFound, p.path, err)
	}

	if art.SpeedIndex == nil {
		return 0, fmt.Errorf("%w: artifact %q has no speedIndex field", ErrNotFound, p.path)
	}
	v := *art.SpeedIndex
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, fmt.Errorf("%w: artifact %q speedIndex %v is not a valid timing", ErrNotFound, p.path, v)
	}
	return v, nil
}
