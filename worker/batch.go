package worker

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/medwire/inspector"
)

// BatchInspector provides a simple interface for inspecting a slice of
// messages without managing a long-lived pool.
type BatchInspector struct {
	inspect BatchInspectFunc
	workers int
}

// BatchInspectFunc is the function signature for processing a single
// message.
type BatchInspectFunc func(ctx context.Context, text string) (*inspector.ParseResult, error)

// NewBatchInspector creates a new batch inspector.
func NewBatchInspector(inspectFunc BatchInspectFunc, workers int) *BatchInspector {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &BatchInspector{
		inspect: inspectFunc,
		workers: workers,
	}
}

// InspectBatch processes multiple messages in parallel. Results come back
// in submission order.
func (bi *BatchInspector) InspectBatch(ctx context.Context, texts []string) *BatchResult {
	if len(texts) == 0 {
		return &BatchResult{
			Results:       make([]*JobResult, 0),
			TotalJobs:     0,
			CompletedJobs: 0,
		}
	}

	// For small batches, don't use parallelism
	if len(texts) <= 2 {
		return bi.inspectSequential(ctx, texts)
	}

	return bi.inspectParallel(ctx, texts)
}

func (bi *BatchInspector) inspectSequential(ctx context.Context, texts []string) *BatchResult {
	results := make([]*JobResult, 0, len(texts))
	failed := 0

	for i, text := range texts {
		select {
		case <-ctx.Done():
			return &BatchResult{
				Results:       results,
				TotalJobs:     len(texts),
				CompletedJobs: len(results),
				FailedJobs:    failed,
			}
		default:
		}

		parsed, err := bi.inspect(ctx, text)
		if err != nil {
			failed++
		}
		results = append(results, &JobResult{
			ID:     fmt.Sprintf("job-%d", i),
			Parsed: parsed,
			Error:  err,
		})
	}

	return &BatchResult{
		Results:       results,
		TotalJobs:     len(texts),
		CompletedJobs: len(results),
		FailedJobs:    failed,
	}
}

func (bi *BatchInspector) inspectParallel(ctx context.Context, texts []string) *BatchResult {
	numWorkers := bi.workers
	if numWorkers > len(texts) {
		numWorkers = len(texts)
	}

	jobs := make(chan indexedText, len(texts))
	resultsChan := make(chan *indexedResult, len(texts))

	// Start workers
	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer wg.Done()
			for job := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}

				parsed, err := bi.inspect(ctx, job.text)
				resultsChan <- &indexedResult{
					index:  job.index,
					parsed: parsed,
					err:    err,
				}
			}
		}()
	}

	// Submit jobs
	go func() {
		for i, text := range texts {
			select {
			case <-ctx.Done():
			case jobs <- indexedText{index: i, text: text}:
			}
		}
		close(jobs)
	}()

	// Wait for workers and close results channel
	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	// Collect results in order
	results := make([]*JobResult, len(texts))
	completed := 0
	failed := 0

	for ir := range resultsChan {
		results[ir.index] = &JobResult{
			ID:     fmt.Sprintf("job-%d", ir.index),
			Parsed: ir.parsed,
			Error:  ir.err,
		}
		completed++
		if ir.err != nil {
			failed++
		}
	}

	return &BatchResult{
		Results:       results,
		TotalJobs:     len(texts),
		CompletedJobs: completed,
		FailedJobs:    failed,
	}
}

type indexedText struct {
	index int
	text  string
}

type indexedResult struct {
	index  int
	parsed *inspector.ParseResult
	err    error
}

// InspectBatchSimple is a convenience function for one-off batch
// inspection.
func InspectBatchSimple(ctx context.Context, inspectFunc BatchInspectFunc, texts []string) *BatchResult {
	bi := NewBatchInspector(inspectFunc, runtime.NumCPU())
	return bi.InspectBatch(ctx, texts)
}
