package inspector

import "runtime"

// Option configures the parsing engine.
type Option func(*Options)

// Options holds all configuration for the engine. Every limit exists to
// bound worst-case work on adversarial input; none of them can be disabled,
// only resized.
type Options struct {
	// MaxInputSize is the byte ceiling applied to JSON and XML inputs
	// before parsing.
	MaxInputSize int

	// MaxProbeDepth caps the recursion of the JSON depth computation. The
	// probe reports the cap value instead of recursing further.
	MaxProbeDepth int

	// MaxTreeDepth caps analysis-tree depth; nodes beyond it collapse to a
	// truncated leaf.
	MaxTreeDepth int

	// MaxTreeItems caps the total number of analysis-tree nodes.
	MaxTreeItems int

	// MaxStructureEntries caps shallow structure listings (top-level
	// fields, direct XML children).
	MaxStructureEntries int

	// MaxFieldsPerRecord caps the fields reported per segment/record in
	// analyses.
	MaxFieldsPerRecord int

	// WorkerCount is the number of workers used for batch parsing.
	WorkerCount int
}

// DefaultOptions returns the default configuration.
func DefaultOptions() *Options {
	return &Options{
		MaxInputSize:        10 * 1024 * 1024, // 10 MiB
		MaxProbeDepth:       100,
		MaxTreeDepth:        12,
		MaxTreeItems:        500,
		MaxStructureEntries: 20,
		MaxFieldsPerRecord:  10,
		WorkerCount:         runtime.NumCPU(),
	}
}

// WithMaxInputSize sets the byte ceiling for JSON and XML inputs.
func WithMaxInputSize(bytes int) Option {
	return func(o *Options) {
		if bytes > 0 {
			o.MaxInputSize = bytes
		}
	}
}

// WithMaxProbeDepth sets the JSON depth-probe recursion cap.
func WithMaxProbeDepth(depth int) Option {
	return func(o *Options) {
		if depth > 0 {
			o.MaxProbeDepth = depth
		}
	}
}

// WithMaxTreeDepth sets the analysis-tree depth cap.
func WithMaxTreeDepth(depth int) Option {
	return func(o *Options) {
		if depth > 0 {
			o.MaxTreeDepth = depth
		}
	}
}

// WithMaxTreeItems sets the analysis-tree node-count cap.
func WithMaxTreeItems(items int) Option {
	return func(o *Options) {
		if items > 0 {
			o.MaxTreeItems = items
		}
	}
}

// WithMaxStructureEntries sets the shallow structure-listing cap.
func WithMaxStructureEntries(entries int) Option {
	return func(o *Options) {
		if entries > 0 {
			o.MaxStructureEntries = entries
		}
	}
}

// WithMaxFieldsPerRecord sets the per-segment/record field cap in analyses.
func WithMaxFieldsPerRecord(fields int) Option {
	return func(o *Options) {
		if fields > 0 {
			o.MaxFieldsPerRecord = fields
		}
	}
}

// WithWorkerCount sets the number of workers for batch parsing.
// Defaults to runtime.NumCPU().
func WithWorkerCount(count int) Option {
	return func(o *Options) {
		if count > 0 {
			o.WorkerCount = count
		}
	}
}
