package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dgallion1/skufinder/internal/config"
	"github.com/dgallion1/skufinder/internal/parser"
	"github.com/dgallion1/skufinder/internal/session"
	"github.com/dgallion1/skufinder/internal/stats"
)

// ErrQueueFull is returned by Submit when no queue slot is free.
var ErrQueueFull = errors.New("job queue is full")

// Orchestrator runs report loads off the request path.
type Orchestrator struct {
	jobs    *JobStore
	queue   chan *Job
	session *session.Session
	stats   *stats.Window
	log     *slog.Logger
	cfg     config.Config

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewOrchestrator creates the pipeline. Call Start to launch workers.
func NewOrchestrator(cfg config.Config, sess *session.Session, st *stats.Window, log *slog.Logger) *Orchestrator {
	return &Orchestrator{
		jobs:    NewJobStore(cfg.JobTTL),
		queue:   make(chan *Job, cfg.MaxQueueSize),
		session: sess,
		stats:   st,
		log:     log,
		cfg:     cfg,
	}
}

func (o *Orchestrator) newWorker() *Worker {
	return NewWorker(o.session, o.stats, o.log, parser.Options{
		PDFFallbackPdftotext: o.cfg.PDFFallbackPdftotext,
		XLSXSheet:            o.cfg.XLSXSheet,
	})
}

// Start launches worker goroutines.
func (o *Orchestrator) Start(ctx context.Context) {
	workerCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	for range o.cfg.WorkerCount {
		o.wg.Add(1)
		go func() {
			defer o.wg.Done()
			w := o.newWorker()
			for {
				select {
				case <-workerCtx.Done():
					return
				case job, ok := <-o.queue:
					if !ok {
						return
					}
					w.Process(workerCtx, job)
				}
			}
		}()
	}

	// Start job store cleanup.
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-workerCtx.Done():
				return
			case <-ticker.C:
				o.jobs.Cleanup()
			}
		}
	}()
}

// Stop gracefully shuts down the pipeline.
func (o *Orchestrator) Stop() {
	if o.cancel != nil {
		o.cancel()
	}
	close(o.queue)
	o.wg.Wait()
}

// Submit queues a job. Its publish order is fixed here, so a later upload
// always wins over an earlier one regardless of which worker finishes first.
func (o *Orchestrator) Submit(job *Job) error {
	job.setGeneration(o.session.NextGeneration())
	o.jobs.Put(job)
	select {
	case o.queue <- job:
		return nil
	default:
		job.AddError("queue full")
		job.SetStatus(StatusFailed, "queue_full")
		return fmt.Errorf("%w (%d)", ErrQueueFull, o.cfg.MaxQueueSize)
	}
}

// Run processes a job on the calling goroutine.
func (o *Orchestrator) Run(ctx context.Context, job *Job) JobSnapshot {
	job.setGeneration(o.session.NextGeneration())
	o.jobs.Put(job)
	o.newWorker().Process(ctx, job)
	return job.Snapshot()
}

// GetJob returns a job by ID.
func (o *Orchestrator) GetJob(id string) *Job {
	return o.jobs.Get(id)
}

// QueueDepth returns current queue depth.
func (o *Orchestrator) QueueDepth() int {
	return len(o.queue)
}

// Session returns the session the pipeline publishes into.
func (o *Orchestrator) Session() *session.Session {
	return o.session
}

// Stats returns the parse latency window.
func (o *Orchestrator) Stats() *stats.Window {
	return o.stats
}
