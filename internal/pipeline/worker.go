package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgallion1/skufinder/internal/parser"
	"github.com/dgallion1/skufinder/internal/report"
	"github.com/dgallion1/skufinder/internal/session"
	"github.com/dgallion1/skufinder/internal/stats"
)

// Worker runs one report load at a time.
type Worker struct {
	session *session.Session
	stats   *stats.Window
	log     *slog.Logger
	opts    parser.Options
}

func NewWorker(sess *session.Session, st *stats.Window, log *slog.Logger, opts parser.Options) *Worker {
	return &Worker{
		session: sess,
		stats:   st,
		log:     log,
		opts:    opts,
	}
}

// Process parses the job's upload and publishes the report. The session only
// changes if every step succeeds.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	job.SetStatus(StatusParsing, "parsing")
	data := job.FileData()
	hash := ContentHashHex(data)
	job.SetContentHash(hash)

	if w.session.Reconfirm(hash, job.Generation()) {
		log.Info("report already loaded, skipping", "generation", job.Generation())
		job.SetStatus(StatusDupSkipped, "dedup")
		return
	}

	start := time.Now()
	tbl, err := parser.Load(bytes.NewReader(data), job.Filename, w.opts)
	if err != nil {
		log.Error("parse failed", "error", err)
		job.AddError(fmt.Sprintf("parse: %s", err))
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	rep := report.Parse(tbl)
	rep.ContentHash = hash
	elapsed := time.Since(start)
	if w.stats != nil {
		w.stats.Record(elapsed)
	}
	job.SetResult(rep)
	if rep.Unterminated > 0 {
		log.Warn("products after last subtotal dropped", "count", rep.Unterminated)
	}

	if err := w.session.Publish(ctx, rep, job.Filename, job.Generation()); err != nil {
		if errors.Is(err, session.ErrSuperseded) {
			log.Info("newer report already published, discarding")
			job.SetStatus(StatusSuperseded, "publishing")
			return
		}
		log.Error("publish failed", "error", err)
		job.AddError(fmt.Sprintf("publish: %s", err))
		job.SetStatus(StatusFailed, "publishing")
		return
	}

	log.Info("report published",
		"rows", rep.Rows,
		"sections", len(rep.Sections),
		"products", rep.ProductCount(),
		"skus", rep.Index.Len(),
		"duration_ms", elapsed.Milliseconds(),
	)
	job.SetStatus(StatusCompleted, "done")
}
