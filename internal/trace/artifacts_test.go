package trace

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeArtifact writes content to a temp file and returns its path.
func writeArtifact(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "metrics.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write artifact: %v", err)
	}
	return path
}

func TestArtifactsProvider_Valid(t *testing.T) {
	path := writeArtifact(t, `{"firstContentfulPaint": 1210.4, "speedIndex": 3043.6}`)
	p := &artifactsProvider{path: path}

	got, err := p.SpeedIndex(context.Background())
	if err != nil {
		t.Fatalf("SpeedIndex() error = %v", err)
	}
	if got != 3043.6 {
		t.Errorf("SpeedIndex() = %v, want 3043.6", got)
	}
}

func TestArtifactsProvider_NotFound(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing field", `{"firstContentfulPaint": 1210.4}`},
		{"invalid json", `{"speedIndex": `},
		{"negative value", `{"speedIndex": -100}`},
		{"wrong field type", `{"speedIndex": "fast"}`},
		{"empty object", `{}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := &artifactsProvider{path: writeArtifact(t, tc.content)}
			_, err := p.SpeedIndex(context.Background())
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("SpeedIndex() error = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestArtifactsProvider_MissingFile(t *testing.T) {
	p := &artifactsProvider{path: filepath.Join(t.TempDir(), "nope.json")}
	_, err := p.SpeedIndex(context.Background())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("SpeedIndex() error = %v, want ErrNotFound", err)
	}
}

func TestArtifactsProvider_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &artifactsProvider{path: writeArtifact(t, `{"speedIndex": 3000}`)}
	_, err := p.SpeedIndex(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("SpeedIndex() error = %v, want context.Canceled", err)
	}
}
