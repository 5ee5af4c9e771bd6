// Package metrics provides in-process request metrics with bounded
// memory: a sliding window of latency samples per endpoint and a
// bounded log of recent errors.
package metrics

import (
	"sort"
	"sync"
	"time"
)

const (
	// maxLatencySamples bounds the per-endpoint latency window.
	maxLatencySamples = 100

	// maxRecentErrors bounds the recent-error log.
	maxRecentErrors = 50
)

// Tracker records request latencies and errors. All methods are safe
// for concurrent use.
type Tracker struct {
	mu        sync.Mutex
	latencies map[string][]time.Duration
	errors    []ErrorRecord
	errCounts map[string]int
}

// ErrorRecord is one recorded request error.
type ErrorRecord struct {
	Endpoint string    `json:"endpoint"`
	Message  string    `json:"message"`
	At       time.Time `json:"at"`
}

// EndpointStats summarizes the latency window of one endpoint.
type EndpointStats struct {
	Count int     `json:"count"`
	AvgMs float64 `json:"avg_ms"`
	MinMs float64 `json:"min_ms"`
	MaxMs float64 `json:"max_ms"`
	P95Ms float64 `json:"p95_ms"`
}

// Snapshot is a point-in-time view of all recorded metrics.
type Snapshot struct {
	Endpoints   map[string]EndpointStats `json:"endpoints"`
	ErrorCounts map[string]int           `json:"error_counts,omitempty"`
	Recent      []ErrorRecord            `json:"recent_errors,omitempty"`
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{
		latencies: make(map[string][]time.Duration),
		errCounts: make(map[string]int),
	}
}

// RecordLatency appends a latency sample for the endpoint, evicting
// the oldest sample once the window is full.
func (t *Tracker) RecordLatency(endpoint string, d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	samples := append(t.latencies[endpoint], d)
	if len(samples) > maxLatencySamples {
		samples = samples[len(samples)-maxLatencySamples:]
	}
	t.latencies[endpoint] = samples
}

// RecordError records a request error under the endpoint, evicting the
// oldest record once the log is full.
func (t *Tracker) RecordError(endpoint string, err error) {
	if err == nil {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.errors = append(t.errors, ErrorRecord{
		Endpoint: endpoint,
		Message:  err.Error(),
		At:       time.Now().UTC(),
	})
	if len(t.errors) > maxRecentErrors {
		t.errors = t.errors[len(t.errors)-maxRecentErrors:]
	}
	t.errCounts[endpoint]++
}

// Snapshot returns a copy of the current metrics.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	snap := Snapshot{
		Endpoints: make(map[string]EndpointStats, len(t.latencies)),
	}

	for endpoint, samples := range t.latencies {
		if len(samples) == 0 {
			continue
		}
		snap.Endpoints[endpoint] = summarize(samples)
	}

	if len(t.errCounts) > 0 {
		snap.ErrorCounts = make(map[string]int, len(t.errCounts))
		for endpoint, n := range t.errCounts {
			snap.ErrorCounts[endpoint] = n
		}
	}
	if len(t.errors) > 0 {
		snap.Recent = make([]ErrorRecord, len(t.errors))
		copy(snap.Recent, t.errors)
	}

	return snap
}

func summarize(samples []time.Duration) EndpointStats {
	sorted := make([]time.Duration, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var total time.Duration
	for _, d := range sorted {
		total += d
	}

	p95Index := (len(sorted) * 95) / 100
	if p95Index >= len(sorted) {
		p95Index = len(sorted) - 1
	}

	return EndpointStats{
		Count: len(sorted),
		AvgMs: ms(total) / float64(len(sorted)),
		MinMs: ms(sorted[0]),
		MaxMs: ms(sorted[len(sorted)-1]),
		P95Ms: ms(sorted[p95Index]),
	}
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
