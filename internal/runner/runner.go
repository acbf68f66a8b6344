package runner

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/HamzaFarooq007/lighthouse/internal/audit"
	"github.com/HamzaFarooq007/lighthouse/internal/config"
	"github.com/HamzaFarooq007/lighthouse/internal/trace"
	"github.com/HamzaFarooq007/lighthouse/pkg/report"
)

// PageReport is one page's audit outcome, ready for the reporting layer.
type PageReport struct {
	RunID       string        `json:"runId"`
	Page        string        `json:"page"`
	Audit       report.Meta   `json:"audit"`
	Result      report.Result `json:"result"`
	GeneratedAt time.Time     `json:"generatedAt"`
}

// pageSource pairs a configured page with its measurement provider.
type pageSource struct {
	page     config.Page
	provider trace.Provider
}

// Runner audits the configured pages. Safe for a single goroutine;
// the underlying audit itself is safe for concurrent use.
type Runner struct {
	pages []pageSource
}

// New builds a Runner from cfg. Pages whose provider cannot be built are
// skipped with a logged error; the remaining pages still run.
func New(cfg *config.Config) *Runner {
	r := &Runner{}
	for _, page := range cfg.Pages {
		p, err := trace.New(page)
		if err != nil {
			slog.Error("runner: skipping page — could not build measurement source",
				"page", page.ID, "err", err)
			continue
		}
		r.pages = append(r.pages, pageSource{page: page, provider: p})
		slog.Info("runner: registered page", "id", page.ID, "type", page.Type)
	}
	if len(r.pages) == 0 {
		slog.Warn("runner: no usable pages configured")
	}
	return r
}

// Run audits every registered page once and returns their reports in
// configuration order. Failures surface as failure-shaped results, never
// as errors.
func (r *Runner) Run(ctx context.Context) []PageReport {
	runID := uuid.NewString()
	reports := make([]PageReport, 0, len(r.pages))
	for _, ps := range r.pages {
		reports = append(reports, r.auditPage(ctx, runID, ps))
	}
	return reports
}

// auditPage runs the audit for a single page and logs the outcome.
func (r *Runner) auditPage(ctx context.Context, runID string, ps pageSource) PageReport {
	res := audit.ComputeScore(ctx, ps.provider)
	if res.Failed() {
		slog.Warn("runner: audit failed",
			"page", ps.page.ID, "debug", res.DebugMessage)
	} else {
		slog.Info("runner: audited page",
			"page", ps.page.ID, "score", res.Score, "raw", *res.RawValue)
	}
	return PageReport{
		RunID:       runID,
		Page:        ps.page.ID,
		Audit:       audit.Meta,
		Result:      res,
		GeneratedAt: time.Now().UTC(),
	}
}

// WriteJSON encodes reports as indented JSON to w.
func WriteJSON(w io.Writer, reports []PageReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}
