package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/yaklabco/gomatlex/pkg/scan"
)

// Runner orchestrates multi-file scanning using a scan.Pipeline.
type Runner struct {
	// Pipeline handles per-file tokenizing and folding.
	Pipeline *scan.Pipeline
}

// New creates a new Runner with the given pipeline.
func New(pipeline *scan.Pipeline) *Runner {
	return &Runner{Pipeline: pipeline}
}

// Run discovers files under opts.Paths and scans them concurrently. The
// returned Result lists outcomes in path order regardless of worker
// scheduling, so repeated runs over the same tree are byte-identical.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers complete out of order; key by path and rebuild in the
	// sorted discovery order.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}
	return result, nil
}

// worker scans files from workCh and sends outcomes to outCh.
func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := FileOutcome{Path: path}
		res, err := r.Pipeline.File(ctx, path)
		if err != nil {
			outcome.Error = err
		} else {
			outcome.Result = res
		}

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}
