package worker

import "github.com/medwire/inspector"

// Job represents one message to detect and parse.
type Job struct {
	// ID is a unique identifier for this job. Left empty, the pool
	// assigns a random UUID.
	ID string

	// Text is the raw message text.
	Text string

	// Format pins the format to parse as. Left empty, the pool runs
	// detection first and parses as whatever it finds.
	Format inspector.Format
}

// JobResult represents the outcome of one job.
type JobResult struct {
	// ID matches the Job.ID that produced this result.
	ID string

	// Detection holds the detection outcome when the job did not pin a
	// format. Nil when the format was pinned.
	Detection *inspector.DetectionResult

	// Parsed contains the parse result on success.
	Parsed *inspector.ParseResult

	// Error contains any error that occurred during processing.
	Error error

	// Duration is the time taken to process the job (in nanoseconds).
	Duration int64
}

// BatchResult aggregates results from multiple jobs.
type BatchResult struct {
	// Results contains all job results.
	Results []*JobResult

	// TotalJobs is the number of jobs submitted.
	TotalJobs int

	// CompletedJobs is the number of jobs completed (including errors).
	CompletedJobs int

	// FailedJobs is the number of jobs that failed with an error.
	FailedJobs int

	// TotalDuration is the total processing time across all jobs (in
	// nanoseconds).
	TotalDuration int64
}

// HasErrors returns true if any job in the batch failed.
func (br *BatchResult) HasErrors() bool {
	for _, r := range br.Results {
		if r.Error != nil {
			return true
		}
	}
	return false
}

// FailureCount returns the number of failed jobs.
func (br *BatchResult) FailureCount() int {
	count := 0
	for _, r := range br.Results {
		if r.Error != nil {
			count++
		}
	}
	return count
}
