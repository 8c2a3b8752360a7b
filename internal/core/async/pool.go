// Package async fans a batch of source files out over a fixed worker pool.
package async

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/johnnybahia/marcasceara/internal/core"
	"github.com/johnnybahia/marcasceara/internal/entity"
)

// Result is the outcome for one source file. Records and Err are mutually
// exclusive; Path is always set.
type Result struct {
	Path    string
	Records []entity.OrderRecord
	Err     error
}

type Pool struct {
	proc    *core.Processor
	logger  *slog.Logger
	workers int
	timeout time.Duration
}

type Option func(*Pool)

func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.workers = n
		}
	}
}

func WithFileTimeout(d time.Duration) Option {
	return func(p *Pool) {
		if d > 0 {
			p.timeout = d
		}
	}
}

func NewPool(proc *core.Processor, logger *slog.Logger, opts ...Option) *Pool {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Pool{
		proc:    proc,
		logger:  logger,
		workers: 4,
		timeout: 30 * time.Second,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// ProcessAll runs every path through the processor and returns one Result
// per input, in input order. Worker count never exceeds the batch size.
func (p *Pool) ProcessAll(ctx context.Context, paths []string) []Result {
	results := make([]Result, len(paths))
	if len(paths) == 0 {
		return results
	}

	batchID := uuid.New()
	workers := p.workers
	if workers > len(paths) {
		workers = len(paths)
	}
	p.logger.Info("batch started", "batch_id", batchID, "files", len(paths), "workers", workers)

	type job struct {
		index int
		path  string
	}
	ch := make(chan job)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for j := range ch {
				fileCtx, cancel := context.WithTimeout(ctx, p.timeout)
				records, err := p.proc.ProcessFile(fileCtx, j.path)
				cancel()

				results[j.index] = Result{Path: j.path, Records: records, Err: err}
				if err != nil {
					p.logger.Warn("file skipped", "worker_id", workerID, "batch_id", batchID, "path", j.path, "err", err)
				} else {
					p.logger.Info("file processed", "worker_id", workerID, "batch_id", batchID, "path", j.path, "records", len(records))
				}
			}
		}(i + 1)
	}

	for i, path := range paths {
		ch <- job{index: i, path: path}
	}
	close(ch)
	wg.Wait()

	p.logger.Info("batch finished", "batch_id", batchID, "files", len(paths))
	return results
}
