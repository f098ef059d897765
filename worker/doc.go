// Package worker provides a worker pool for parallel batch inspection.
//
// The worker pool enables efficient detection and parsing of multiple
// messages in parallel, taking advantage of multi-core processors.
//
// Example usage:
//
//	// Create a worker pool with 4 workers
//	pool := worker.NewPool(detect.New(), parse.New(), 4)
//
//	// Submit jobs
//	for _, msg := range messages {
//	    pool.Submit(worker.Job{Text: msg})
//	}
//
//	// Collect results
//	batch := pool.CloseAndWait()
//	for _, result := range batch.Results {
//	    if result.Error != nil {
//	        // Handle error
//	    }
//	    // Process result.Parsed
//	}
package worker
