package runner

import (
	"context"
	"log/slog"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
)

// Watch re-audits a page whenever its file-backed measurement source is
// rewritten, calling onReport with the fresh report. It runs until ctx
// is cancelled. Pages without a file path (pure HTTP sources) are not
// watched; they are audited on the regular Run passes only.
func (r *Runner) Watch(ctx context.Context, onReport func(PageReport)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Map watched paths back to their pages. Multiple pages may share a
	// path; all of them re-run on a change.
	byPath := make(map[string][]pageSource)
	for _, ps := range r.pages {
		if ps.page.Path == "" {
			continue
		}
		if _, seen := byPath[ps.page.Path]; !seen {
			if err := watcher.Add(ps.page.Path); err != nil {
				slog.Error("runner: cannot watch measurement source",
					"page", ps.page.ID, "path", ps.page.Path, "err", err)
				continue
			}
		}
		byPath[ps.page.Path] = append(byPath[ps.page.Path], ps)
	}

	if len(byPath) == 0 {
		slog.Warn("runner: watch mode enabled but no file-backed pages to watch")
		<-ctx.Done()
		return nil
	}

	slog.Info("runner: watching measurement sources", "paths", len(byPath))

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			runID := uuid.NewString()
			for _, ps := range byPath[event.Name] {
				onReport(r.auditPage(ctx, runID, ps))
			}

			// Re-add in case an atomic save replaced the inode.
			_ = watcher.Add(event.Name)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("runner: watcher error", "err", err)
		}
	}
}
