// Package performance provides performance tracking for Shelfwise
// operations with real-time metrics.
package performance

import (
	"sync"
	"time"
)

// Tracker manages performance markers and provides metrics aggregation
type Tracker struct {
	markers    []*Marker
	maxMarkers int
	mu         sync.RWMutex
	started    time.Time
}

// Marker tracks a single operation from start to completion
type Marker struct {
	Operation string         `json:"operation"`
	StartTime time.Time      `json:"startTime"`
	EndTime   time.Time      `json:"endTime"`
	Duration  time.Duration  `json:"duration"`
	Success   bool           `json:"success"`
	Error     string         `json:"error,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`

	tracker *Tracker
	once    sync.Once
}

// NewTracker creates a performance tracker with bounded marker retention.
func NewTracker(maxMarkers int) *Tracker {
	if maxMarkers <= 0 {
		maxMarkers = 10000
	}
	return &Tracker{
		maxMarkers: maxMarkers,
		started:    time.Now().UTC(),
	}
}

// StartOperation begins tracking a named operation and returns its marker.
func (t *Tracker) StartOperation(operation string) *Marker {
	return &Marker{
		Operation: operation,
		StartTime: time.Now().UTC(),
		Success:   true,
		tracker:   t,
	}
}

// Complete finalizes the marker and records it. Safe to call once; later
// calls are no-ops.
func (m *Marker) Complete() {
	m.once.Do(func() {
		m.EndTime = time.Now().UTC()
		m.Duration = m.EndTime.Sub(m.StartTime)
		if m.tracker != nil {
			m.tracker.record(m)
		}
	})
}

// SetSuccess marks the operation outcome.
func (m *Marker) SetSuccess(success bool) {
	m.Success = success
}

// SetError records the failure cause and marks the operation unsuccessful.
func (m *Marker) SetError(err error) {
	if err != nil {
		m.Error = err.Error()
		m.Success = false
	}
}

// AddMetadata attaches a key/value pair to the marker.
func (m *Marker) AddMetadata(key string, value any) {
	if m.Metadata == nil {
		m.Metadata = make(map[string]any)
	}
	m.Metadata[key] = value
}

func (t *Tracker) record(m *Marker) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.markers = append(t.markers, m)
	if len(t.markers) > t.maxMarkers {
		t.markers = t.markers[len(t.markers)-t.maxMarkers:]
	}
}

// Stats summarizes recorded operations.
type Stats struct {
	Uptime          time.Duration `json:"uptime"`
	TotalOperations int           `json:"totalOperations"`
	FailedOps       int           `json:"failedOperations"`
	AvgDuration     time.Duration `json:"avgDuration"`
}

// GetStats returns aggregate statistics over retained markers.
func (t *Tracker) GetStats() Stats {
	t.mu.RLock()
	defer t.mu.RUnlock()

	stats := Stats{
		Uptime:          time.Since(t.started),
		TotalOperations: len(t.markers),
	}

	var total time.Duration
	for _, m := range t.markers {
		total += m.Duration
		if !m.Success {
			stats.FailedOps++
		}
	}
	if len(t.markers) > 0 {
		stats.AvgDuration = total / time.Duration(len(t.markers))
	}

	return stats
}
