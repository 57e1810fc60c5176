package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dgallion1/guideview/internal/compose"
	"github.com/dgallion1/guideview/internal/docstore"
	"github.com/dgallion1/guideview/internal/publish"
)

// Worker renders one batch job: every requested document is rendered
// to the output directory and, when a publisher is configured, pushed
// to the remote site.
type Worker struct {
	store     *docstore.Store
	publisher *publish.Client // nil disables publishing
	outDir    string
	log       *slog.Logger
}

func NewWorker(store *docstore.Store, publisher *publish.Client, outDir string, log *slog.Logger) *Worker {
	return &Worker{
		store:     store,
		publisher: publisher,
		outDir:    outDir,
		log:       log,
	}
}

// Process runs the batch render for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID)

	names := job.Docs
	if len(names) == 0 {
		var err error
		names, err = w.store.List()
		if err != nil {
			log.Error("listing documents failed", "error", err)
			job.AddError(err.Error())
			job.SetStatus(StatusFailed, "listing")
			return
		}
	}
	job.SetTotalDocs(len(names))

	if err := os.MkdirAll(w.outDir, 0o755); err != nil {
		log.Error("output dir", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "rendering")
		return
	}

	job.SetStatus(StatusRendering, "rendering")
	hadErrors := false
	for _, name := range names {
		if ctx.Err() != nil {
			job.AddError(ctx.Err().Error())
			job.SetStatus(StatusFailed, "rendering")
			return
		}

		page, err := w.store.Page(name)
		if err != nil {
			log.Error("render failed", "doc", name, "error", err)
			job.AddError(fmt.Sprintf("%s: %s", name, err))
			hadErrors = true
			continue
		}

		if err := w.writePage(name, page); err != nil {
			log.Error("write failed", "doc", name, "error", err)
			job.AddError(fmt.Sprintf("%s: %s", name, err))
			hadErrors = true
			continue
		}
		job.IncrRendered()

		if w.publisher == nil {
			continue
		}
		if err := w.publishPage(ctx, log, name, page); err != nil {
			log.Error("publish failed", "doc", name, "error", err)
			job.AddError(fmt.Sprintf("publish %s: %s", name, err))
			hadErrors = true
			continue
		}
		job.IncrPublished()
	}

	switch {
	case hadErrors && job.Snapshot().Progress.DocsRendered > 0:
		job.SetStatus(StatusPartial, "done")
	case hadErrors:
		job.SetStatus(StatusFailed, "rendering")
	default:
		job.SetStatus(StatusCompleted, "done")
	}
}

func (w *Worker) writePage(name string, page *compose.Page) error {
	path := filepath.Join(w.outDir, name+".html")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := page.WriteHTML(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (w *Worker) publishPage(ctx context.Context, log *slog.Logger, name string, page *compose.Page) error {
	req := publish.PageRequest{
		Title:      page.Title,
		HeaderHTML: page.HeaderHTML,
		BodyHTML:   page.BodyHTML,
		IndexHTML:  page.IndexHTML,
	}
	var lastErr error
	for attempt := 0; attempt < MaxRetries; attempt++ {
		lastErr = w.publisher.PutPage(ctx, name, req)
		if lastErr == nil || !IsRetryable(lastErr) {
			return lastErr
		}
		log.Warn("retryable publish error", "doc", name, "attempt", attempt, "error", lastErr)
		select {
		case <-time.After(Backoff(attempt)):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return lastErr
}
