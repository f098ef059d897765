package inspector

import (
	"sync"
	"sync/atomic"
	"time"
)

// Metrics tracks engine activity using lock-free atomic operations.
// All methods are safe for concurrent use.
type Metrics struct {
	// Detection counts
	detectionsTotal   atomic.Uint64
	detectionsMatched atomic.Uint64

	// Parse counts
	parsesTotal  atomic.Uint64
	parsesFailed atomic.Uint64

	// Parse timing (stored as nanoseconds)
	parseTimeTotal atomic.Uint64
	parseTimeMin   atomic.Uint64
	parseTimeMax   atomic.Uint64

	// Per-format counters (map access via sync.Map)
	formatCounts sync.Map // map[Format]*formatMetrics
}

// formatMetrics tracks activity for a single format.
type formatMetrics struct {
	parses    atomic.Uint64
	failures  atomic.Uint64
	totalTime atomic.Uint64 // nanoseconds
}

// NewMetrics creates a new Metrics instance.
func NewMetrics() *Metrics {
	m := &Metrics{}
	// Initialize min to max uint64 so first value becomes the minimum
	m.parseTimeMin.Store(^uint64(0))
	return m
}

// --- Recording Methods ---

// RecordDetection records a completed detection attempt.
func (m *Metrics) RecordDetection(matched bool) {
	m.detectionsTotal.Add(1)
	if matched {
		m.detectionsMatched.Add(1)
	}
}

// RecordParse records a completed parse attempt for a format.
func (m *Metrics) RecordParse(format Format, duration time.Duration, ok bool) {
	m.parsesTotal.Add(1)
	if !ok {
		m.parsesFailed.Add(1)
	}

	ns := uint64(duration.Nanoseconds())
	m.parseTimeTotal.Add(ns)

	// Update min (CAS loop)
	for {
		old := m.parseTimeMin.Load()
		if ns >= old {
			break
		}
		if m.parseTimeMin.CompareAndSwap(old, ns) {
			break
		}
	}

	// Update max (CAS loop)
	for {
		old := m.parseTimeMax.Load()
		if ns <= old {
			break
		}
		if m.parseTimeMax.CompareAndSwap(old, ns) {
			break
		}
	}

	fm := m.getOrCreateFormatMetrics(format)
	fm.parses.Add(1)
	fm.totalTime.Add(ns)
	if !ok {
		fm.failures.Add(1)
	}
}

func (m *Metrics) getOrCreateFormatMetrics(format Format) *formatMetrics {
	if v, ok := m.formatCounts.Load(format); ok {
		return v.(*formatMetrics)
	}
	fm := &formatMetrics{}
	actual, _ := m.formatCounts.LoadOrStore(format, fm)
	return actual.(*formatMetrics)
}

// --- Query Methods ---

// DetectionsTotal returns the total number of detection attempts.
func (m *Metrics) DetectionsTotal() uint64 {
	return m.detectionsTotal.Load()
}

// DetectionsMatched returns the number of detections that found a format.
func (m *Metrics) DetectionsMatched() uint64 {
	return m.detectionsMatched.Load()
}

// MatchRate returns the fraction of detections that found a format (0.0 to 1.0).
func (m *Metrics) MatchRate() float64 {
	total := m.detectionsTotal.Load()
	if total == 0 {
		return 0
	}
	return float64(m.detectionsMatched.Load()) / float64(total)
}

// ParsesTotal returns the total number of parse attempts.
func (m *Metrics) ParsesTotal() uint64 {
	return m.parsesTotal.Load()
}

// ParsesFailed returns the number of failed parse attempts.
func (m *Metrics) ParsesFailed() uint64 {
	return m.parsesFailed.Load()
}

// AverageParseTime returns the average parse duration.
func (m *Metrics) AverageParseTime() time.Duration {
	total := m.parsesTotal.Load()
	if total == 0 {
		return 0
	}
	return time.Duration(m.parseTimeTotal.Load() / total)
}

// MinParseTime returns the minimum parse duration.
func (m *Metrics) MinParseTime() time.Duration {
	minVal := m.parseTimeMin.Load()
	if minVal == ^uint64(0) {
		return 0
	}
	return time.Duration(minVal)
}

// MaxParseTime returns the maximum parse duration.
func (m *Metrics) MaxParseTime() time.Duration {
	return time.Duration(m.parseTimeMax.Load())
}

// FormatStats holds per-format activity counters.
type FormatStats struct {
	Format    Format        `json:"format"`
	Parses    uint64        `json:"parses"`
	Failures  uint64        `json:"failures"`
	TotalTime time.Duration `json:"total_time"`
	AvgTime   time.Duration `json:"avg_time"`
}

// FormatStats returns activity counters for one format.
func (m *Metrics) FormatStats(format Format) (FormatStats, bool) {
	v, ok := m.formatCounts.Load(format)
	if !ok {
		return FormatStats{Format: format}, false
	}
	fm := v.(*formatMetrics)
	return newFormatStats(format, fm), true
}

// AllFormatStats returns activity counters for every format seen so far.
func (m *Metrics) AllFormatStats() []FormatStats {
	var stats []FormatStats
	m.formatCounts.Range(func(key, value any) bool {
		stats = append(stats, newFormatStats(key.(Format), value.(*formatMetrics)))
		return true
	})
	return stats
}

func newFormatStats(format Format, fm *formatMetrics) FormatStats {
	parses := fm.parses.Load()
	totalTime := fm.totalTime.Load()
	var avg time.Duration
	if parses > 0 {
		avg = time.Duration(totalTime / parses)
	}
	return FormatStats{
		Format:    format,
		Parses:    parses,
		Failures:  fm.failures.Load(),
		TotalTime: time.Duration(totalTime),
		AvgTime:   avg,
	}
}

// --- Export Methods ---

// Snapshot represents a point-in-time snapshot of all metrics.
type Snapshot struct {
	// Timestamp when the snapshot was taken
	Timestamp time.Time `json:"timestamp"`

	// Detection metrics
	DetectionsTotal   uint64  `json:"detections_total"`
	DetectionsMatched uint64  `json:"detections_matched"`
	MatchRate         float64 `json:"match_rate"`

	// Parse metrics
	ParsesTotal  uint64 `json:"parses_total"`
	ParsesFailed uint64 `json:"parses_failed"`

	// Timing metrics (in nanoseconds for precision)
	AvgParseTimeNs uint64 `json:"avg_parse_time_ns"`
	MinParseTimeNs uint64 `json:"min_parse_time_ns"`
	MaxParseTimeNs uint64 `json:"max_parse_time_ns"`

	// Per-format metrics
	Formats []FormatStats `json:"formats,omitempty"`
}

// Snapshot returns a point-in-time snapshot of all metrics.
func (m *Metrics) Snapshot() Snapshot {
	total := m.parsesTotal.Load()

	var avgTime uint64
	if total > 0 {
		avgTime = m.parseTimeTotal.Load() / total
	}

	minTime := m.parseTimeMin.Load()
	if minTime == ^uint64(0) {
		minTime = 0
	}

	return Snapshot{
		Timestamp:         time.Now(),
		DetectionsTotal:   m.detectionsTotal.Load(),
		DetectionsMatched: m.detectionsMatched.Load(),
		MatchRate:         m.MatchRate(),
		ParsesTotal:       total,
		ParsesFailed:      m.parsesFailed.Load(),
		AvgParseTimeNs:    avgTime,
		MinParseTimeNs:    minTime,
		MaxParseTimeNs:    m.parseTimeMax.Load(),
		Formats:           m.AllFormatStats(),
	}
}

// Export returns metrics as a map suitable for external systems.
func (m *Metrics) Export() map[string]interface{} {
	s := m.Snapshot()
	return map[string]interface{}{
		"detections_total":   s.DetectionsTotal,
		"detections_matched": s.DetectionsMatched,
		"match_rate":         s.MatchRate,
		"parses_total":       s.ParsesTotal,
		"parses_failed":      s.ParsesFailed,
		"avg_parse_time_ns":  s.AvgParseTimeNs,
		"min_parse_time_ns":  s.MinParseTimeNs,
		"max_parse_time_ns":  s.MaxParseTimeNs,
	}
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.detectionsTotal.Store(0)
	m.detectionsMatched.Store(0)
	m.parsesTotal.Store(0)
	m.parsesFailed.Store(0)
	m.parseTimeTotal.Store(0)
	m.parseTimeMin.Store(^uint64(0))
	m.parseTimeMax.Store(0)

	m.formatCounts.Range(func(key, _ any) bool {
		m.formatCounts.Delete(key)
		return true
	})
}
