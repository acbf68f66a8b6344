package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"

	"github.com/HamzaFarooq007/lighthouse/internal/config"
	"github.com/HamzaFarooq007/lighthouse/internal/runner"
)

func main() {
	configPath := flag.String("config", "lighthouse.yaml", "path to config file")
	once := flag.Bool("once", false, "run a single audit pass even if watch is enabled")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	setupLogging(cfg.Logging)

	slog.Info("lighthouse starting",
		"config", *configPath,
		"pages", len(cfg.Pages),
		"watch", cfg.Watch && !*once,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	r := runner.New(cfg)

	out, closeOut, err := openOutput(cfg.Output)
	if err != nil {
		slog.Error("failed to open output", "path", cfg.Output, "err", err)
		os.Exit(1)
	}
	defer closeOut()

	// Initial pass — always runs, even in watch mode, so the report is
	// never empty while waiting for the first change.
	reports := r.Run(ctx)
	if err := runner.WriteJSON(out, reports); err != nil {
		slog.Error("failed to write report", "err", err)
		os.Exit(1)
	}

	if !cfg.Watch || *once {
		return
	}

	// Hot-reload logs config changes; rebuilding pages on reload would
	// need provider teardown and is not supported yet.
	go func() {
		if err := config.Watch(ctx, *configPath, func(updated *config.Config) {
			slog.Info("config hot-reloaded — restart to apply page changes",
				"pages", len(updated.Pages))
		}); err != nil {
			slog.Error("config watcher stopped", "err", err)
		}
	}()

	// Watch mode: one JSON object per line as pages are re-audited.
	enc := json.NewEncoder(out)
	err = r.Watch(ctx, func(rep runner.PageReport) {
		if err := enc.Encode(rep); err != nil {
			slog.Error("failed to write report entry", "page", rep.Page, "err", err)
		}
	})
	if err != nil {
		slog.Error("watcher stopped", "err", err)
		os.Exit(1)
	}

	slog.Info("lighthouse shutting down")
}

// setupLogging installs the default slog handler per the config:
// machine-readable JSON, or tint's human-readable text.
func setupLogging(l config.Logging) {
	var handler slog.Handler
	if l.Format == "text" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{Level: l.SlogLevel()})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: l.SlogLevel()})
	}
	slog.SetDefault(slog.New(handler))
}

// openOutput returns the report writer: stdout when path is empty,
// otherwise the (truncated) file at path.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}
