package worker

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/medwire/inspector"
)

// Detector is the interface the pool uses to classify messages. A nil
// detection result means no format matched.
type Detector interface {
	Detect(text string) *inspector.DetectionResult
}

// Parser is the interface the pool uses to parse messages.
type Parser interface {
	Parse(text string, format inspector.Format) (*inspector.ParseResult, error)
}

// Pool manages a pool of worker goroutines for parallel inspection.
type Pool struct {
	workers    int
	jobsChan   chan Job
	resultChan chan *JobResult
	out        chan *JobResult
	detector   Detector
	parser     Parser
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
	closed     atomic.Bool

	// Metrics
	jobsSubmitted atomic.Uint64
	jobsCompleted atomic.Uint64
	totalDuration atomic.Uint64
}

// NewPool creates a new worker pool with the specified number of workers.
// If workers <= 0, it defaults to runtime.NumCPU().
func NewPool(detector Detector, parser Parser, workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	ctx, cancel := context.WithCancel(context.Background())

	p := &Pool{
		workers:    workers,
		jobsChan:   make(chan Job, workers*2),
		resultChan: make(chan *JobResult, workers*2),
		out:        make(chan *JobResult, workers*2),
		detector:   detector,
		parser:     parser,
		ctx:        ctx,
		cancel:     cancel,
	}

	// Start workers
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	go p.collect()

	return p
}

// collect moves worker results into an unbounded buffer and feeds them to
// Results. Workers only ever block on resultChan, which collect always
// drains, so submitting an arbitrarily large batch before reading any
// result cannot deadlock the pool.
func (p *Pool) collect() {
	var queue []*JobResult
	in := p.resultChan
	for in != nil || len(queue) > 0 {
		var outCh chan *JobResult
		var next *JobResult
		if len(queue) > 0 {
			outCh = p.out
			next = queue[0]
		}
		select {
		case r, ok := <-in:
			if !ok {
				in = nil
				continue
			}
			queue = append(queue, r)
		case outCh <- next:
			queue = queue[1:]
		}
	}
	close(p.out)
}

// Submit submits a job to the pool for processing.
// This method blocks if the job queue is full.
func (p *Pool) Submit(job Job) bool {
	if p.closed.Load() {
		return false
	}

	select {
	case <-p.ctx.Done():
		return false
	case p.jobsChan <- job:
		p.jobsSubmitted.Add(1)
		return true
	}
}

// SubmitAsync submits a job without blocking.
// Returns false if the job queue is full or the pool is closed.
func (p *Pool) SubmitAsync(job Job) bool {
	if p.closed.Load() {
		return false
	}

	select {
	case <-p.ctx.Done():
		return false
	case p.jobsChan <- job:
		p.jobsSubmitted.Add(1)
		return true
	default:
		return false
	}
}

// Results returns the channel for receiving job results. It is closed
// once the pool has been closed and every buffered result was delivered.
func (p *Pool) Results() <-chan *JobResult {
	return p.out
}

// Close shuts down the pool, discarding any results not yet read from
// Results.
func (p *Pool) Close() {
	if p.closed.Swap(true) {
		return // Already closed
	}

	p.cancel() // Signal workers to stop
	close(p.jobsChan)

	go func() {
		p.wg.Wait()
		close(p.resultChan)
	}()

	// Discard buffered results
	for range p.out {
	}
}

// CloseAndWait closes the pool and collects all pending results.
func (p *Pool) CloseAndWait() *BatchResult {
	if p.closed.Swap(true) {
		return &BatchResult{}
	}

	close(p.jobsChan)

	go func() {
		p.wg.Wait()
		close(p.resultChan)
	}()

	// Drain results until the buffer is empty and closed
	results := make([]*JobResult, 0)
	failed := 0
	for result := range p.out {
		results = append(results, result)
		if result.Error != nil {
			failed++
		}
	}

	p.cancel()

	return &BatchResult{
		Results:       results,
		TotalJobs:     int(p.jobsSubmitted.Load()),
		CompletedJobs: int(p.jobsCompleted.Load()),
		FailedJobs:    failed,
		TotalDuration: int64(p.totalDuration.Load()),
	}
}

// Stats returns current pool statistics.
func (p *Pool) Stats() PoolStats {
	return PoolStats{
		Workers:       p.workers,
		JobsSubmitted: p.jobsSubmitted.Load(),
		JobsCompleted: p.jobsCompleted.Load(),
		AvgDuration:   p.averageDuration(),
	}
}

// PoolStats contains pool statistics.
type PoolStats struct {
	Workers       int
	JobsSubmitted uint64
	JobsCompleted uint64
	AvgDuration   time.Duration
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for job := range p.jobsChan {
		select {
		case <-p.ctx.Done():
			return
		default:
		}

		result := p.processJob(job)
		p.jobsCompleted.Add(1)
		p.totalDuration.Add(uint64(result.Duration))

		select {
		case <-p.ctx.Done():
			return
		case p.resultChan <- result:
		}
	}
}

func (p *Pool) processJob(job Job) *JobResult {
	start := time.Now()

	result := &JobResult{ID: job.ID}
	if result.ID == "" {
		result.ID = uuid.NewString()
	}

	if p.parser == nil {
		result.Error = ErrNoParser
		result.Duration = time.Since(start).Nanoseconds()
		return result
	}

	format := job.Format
	if format == "" {
		if p.detector == nil {
			result.Error = ErrNoDetector
			result.Duration = time.Since(start).Nanoseconds()
			return result
		}
		detection := p.detector.Detect(job.Text)
		if detection == nil {
			result.Error = fmt.Errorf("%w: no format matched", inspector.ErrUnsupportedFormat)
			result.Duration = time.Since(start).Nanoseconds()
			return result
		}
		result.Detection = detection
		format = detection.Format
	}

	result.Parsed, result.Error = p.parser.Parse(job.Text, format)
	result.Duration = time.Since(start).Nanoseconds()
	return result
}

func (p *Pool) averageDuration() time.Duration {
	completed := p.jobsCompleted.Load()
	if completed == 0 {
		return 0
	}
	return time.Duration(p.totalDuration.Load() / completed)
}

// ErrNoParser is returned when the pool has no parser configured.
var ErrNoParser = poolError("no parser configured")

// ErrNoDetector is returned when a job needs detection but the pool has
// no detector configured.
var ErrNoDetector = poolError("no detector configured")

type poolError string

func (e poolError) Error() string {
	return string(e)
}
