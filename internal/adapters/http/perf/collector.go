package perf

import (
	"math"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultRingSize is the default capacity of the ring buffer.
const DefaultRingSize = 10000

// Entry is a single request timing record stored in the ring buffer.
type Entry struct {
	Route      string // "METHOD /path"
	StatusCode int
	DurationMs float64
	Timestamp  time.Time
}

// Collector is a fixed-size ring buffer for request timings.
// Writes are non-blocking; when full, oldest entries are overwritten.
// Aggregation happens only on read (Snapshot).
type Collector struct {
	mu      sync.Mutex
	entries []Entry
	size    int
	pos     int
	count   int64 // total entries ever written (atomic for stats)
}

// NewCollector creates a collector with the given ring buffer capacity.
// PRE: size > 0
// POST: Returns a ready-to-use collector with pre-allocated storage
func NewCollector(size int) *Collector {
	if size <= 0 {
		size = DefaultRingSize
	}
	return &Collector{
		entries: make([]Entry, size),
		size:    size,
	}
}

// Record appends an entry to the ring buffer.
// PRE: e is a valid Entry
// POST: Entry stored; if buffer full, oldest entry overwritten
// Lock hold time: single index increment + struct copy (~nanoseconds).
func (c *Collector) Record(e Entry) {
	c.mu.Lock()
	c.entries[c.pos] = e
	c.pos = (c.pos + 1) % c.size
	c.mu.Unlock()
	atomic.AddInt64(&c.count, 1)
}

// TotalRecorded returns the total number of entries ever recorded.
// PRE: none
// POST: returns count >= 0
func (c *Collector) TotalRecorded() int64 {
	return atomic.LoadInt64(&c.count)
}

// Snapshot holds aggregated performance data computed on read.
type Snapshot struct {
	TotalRequests int64       `json:"totalRequests"`
	P50Ms         float64     `json:"p50Ms"`
	P95Ms         float64     `json:"p95Ms"`
	P99Ms         float64     `json:"p99Ms"`
	ErrorCount    int         `json:"errorCount"`
	SlowestRoutes []RouteStat `json:"slowestRoutes"`
}

// RouteStat aggregates timing for a single route.
type RouteStat struct {
	Route   string  `json:"route"`
	AvgMs   float64 `json:"avgMs"`
	MaxMs   float64 `json:"maxMs"`
	Count   int     `json:"count"`
	TotalMs float64 `json:"totalMs"`
}

// Snapshot computes aggregated stats from the ring buffer.
// This is expensive (sorts) and should only be called on monitor page load.
// PRE: none
// POST: Returns a Snapshot with percentiles and a top-N route list
func (c *Collector) Snapshot(since time.Time, topN int) Snapshot {
	c.mu.Lock()
	// Copy entries under lock - minimal critical section
	buf := make([]Entry, c.size)
	copy(buf, c.entries)
	c.mu.Unlock()

	var durations []float64
	var errorCount int
	routeStats := make(map[string]*RouteStat)

	for _, e := range buf {
		if e.Timestamp.IsZero() || e.Timestamp.Before(since) {
			continue
		}
		durations = append(durations, e.DurationMs)
		if e.StatusCode >= 500 {
			errorCount++
		}
		s, ok := routeStats[e.Route]
		if !ok {
			s = &RouteStat{Route: e.Route}
			routeStats[e.Route] = s
		}
		s.Count++
		s.TotalMs += e.DurationMs
		if e.DurationMs > s.MaxMs {
			s.MaxMs = e.DurationMs
		}
	}

	for _, s := range routeStats {
		s.AvgMs = s.TotalMs / float64(s.Count)
	}

	snap := Snapshot{
		TotalRequests: c.TotalRecorded(),
		ErrorCount:    errorCount,
		SlowestRoutes: topByAvg(routeStats, topN),
	}

	if len(durations) > 0 {
		sort.Float64s(durations)
		snap.P50Ms = percentile(durations, 50)
		snap.P95Ms = percentile(durations, 95)
		snap.P99Ms = percentile(durations, 99)
	}

	return snap
}

// percentile returns the p-th percentile from a sorted slice.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := (p / 100) * float64(len(sorted)-1)
	lower := int(math.Floor(idx))
	upper := int(math.Ceil(idx))
	if lower == upper || upper >= len(sorted) {
		return sorted[lower]
	}
	frac := idx - float64(lower)
	return sorted[lower]*(1-frac) + sorted[upper]*frac
}

// topByAvg returns the top N routes sorted by average duration (descending).
func topByAvg(stats map[string]*RouteStat, n int) []RouteStat {
	list := make([]RouteStat, 0, len(stats))
	for _, s := range stats {
		list = append(list, *s)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].AvgMs > list[j].AvgMs
	})
	if len(list) > n {
		list = list[:n]
	}
	return list
}
