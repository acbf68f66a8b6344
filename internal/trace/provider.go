package trace

import (
	"context"
	"errors"
	"fmt"

	"github.com/HamzaFarooq007/lighthouse/internal/config"
)

// ErrNotFound is returned when a source resolves but carries no usable
// Speed Index measurement (missing file, malformed content, absent field).
var ErrNotFound = errors.New("trace: speed index measurement not found")

// Provider resolves the Speed Index measurement for one page.
//
// SpeedIndex may block on I/O; it must honor ctx cancellation. A provider
// is built once per page and reused across audit invocations.
type Provider interface {
	SpeedIndex(ctx context.Context) (float64, error)
}

// New returns the appropriate Provider for the given page configuration.
func New(page config.Page) (Provider, error) {
	switch page.Type {
	case "artifacts":
		return &artifactsProvider{path: page.Path}, nil
	case "exposition":
		return newExpositionProvider(page), nil
	default:
		return nil, fmt.Errorf("trace: unsupported source type %q", page.Type)
	}
}

// StaticProvider is a Provider that always yields a fixed measurement.
// Intended for tests and for embedding the audit as a library when the
// caller already holds the value.
type StaticProvider float64

// SpeedIndex returns the fixed measurement.
func (p StaticProvider) SpeedIndex(context.Context) (float64, error) {
	return float64(p), nil
}
