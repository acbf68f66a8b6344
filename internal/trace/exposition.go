package trace

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"

	"github.com/HamzaFarooq007/lighthouse/internal/config"
)

const defaultFetchTimeout = 10 * time.Second

// speedIndexFamily is the gauge a lab exporter publishes for each page,
// in milliseconds.
const speedIndexFamily = "lab_speed_index_milliseconds"

// expositionProvider extracts the measurement from a Prometheus text
// exposition, served over HTTP or dumped to a local file by the lab run.
type expositionProvider struct {
	endpoint string
	path     string
	client   *http.Client
}

func newExpositionProvider(page config.Page) *expositionProvider {
	return &expositionProvider{
		endpoint: page.Endpoint,
		path:     page.Path,
		client:   &http.Client{Timeout: defaultFetchTimeout},
	}
}

// SpeedIndex fetches the exposition and extracts the speed-index gauge.
// A reachable source with no such family means no measurement was
// exported — that is ErrNotFound, not a transport failure.
func (p *expositionProvider) SpeedIndex(ctx context.Context) (float64, error) {
	body, err := p.fetch(ctx)
	if err != nil {
		return 0, err
	}

	mfs, err := parseExposition(bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	v, ok := familyValue(mfs[speedIndexFamily])
	if !ok {
		return 0, fmt.Errorf("%w: exposition has no %s gauge", ErrNotFound, speedIndexFamily)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, fmt.Errorf("%w: %s value %v is not a valid timing", ErrNotFound, speedIndexFamily, v)
	}
	return v, nil
}

// fetch returns the raw exposition bytes from the endpoint or file.
func (p *expositionProvider) fetch(ctx context.Context) ([]byte, error) {
	if p.endpoint == "" {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(p.path)
		if err != nil {
			return nil, fmt.Errorf("%w: read exposition %q: %v", ErrNotFound, p.path, err)
		}
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("trace: build request: %w", err)
	}
	req.Header.Set("Accept", string(expfmt.NewFormat(expfmt.TypeTextPlain)))

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("trace: fetch exposition: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("trace: fetch exposition: unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// parseExposition decodes a Prometheus text exposition into metric families.
// A partial result with a non-fatal parse warning is still returned
// successfully.
func parseExposition(r io.Reader) (map[string]*dto.MetricFamily, error) {
	var parser expfmt.TextParser
	mfs, err := parser.TextToMetricFamilies(r)
	if err != nil && len(mfs) == 0 {
		return nil, fmt.Errorf("parse prometheus text: %v", err)
	}
	return mfs, nil
}

// familyValue returns the first gauge, counter, or untyped sample in mf.
// Returns false if mf is nil or carries no samples.
func familyValue(mf *dto.MetricFamily) (float64, bool) {
	if mf == nil {
		return 0, false
	}
	for _, m := range mf.GetMetric() {
		switch {
		case m.Gauge != nil:
			return m.Gauge.GetValue(), true
		case m.Counter != nil:
			return m.Counter.GetValue(), true
		case m.Untyped != nil:
			return m.Untyped.GetValue(), true
		}
	}
	return 0, false
}
