package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/spec-kit/sla-monitor/internal/sla"
)

// Metrics provides basic in-memory counters for requests and SLA sweeps.
type Metrics struct {
	mu             sync.Mutex
	requestCount   map[string]int64
	errorCount     map[string]int64
	evaluationRuns int64
	bucketCount    map[sla.Bucket]int64
	lastSweep      time.Duration
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requestCount: make(map[string]int64),
		errorCount:   make(map[string]int64),
		bucketCount:  make(map[sla.Bucket]int64),
	}
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + strconv.Itoa(status)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount[key]++
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + code
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCount[key]++
}

// RecordSummary captures the outcome of an aggregation pass.
func (m *Metrics) RecordSummary(summary sla.Summary, duration time.Duration) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.evaluationRuns++
	m.lastSweep = duration
	m.bucketCount[sla.BucketNormal] = int64(summary.NormalCount)
	m.bucketCount[sla.BucketWarning] = int64(summary.WarningCount)
	m.bucketCount[sla.BucketCritical] = int64(summary.CriticalCount)
	m.bucketCount[sla.BucketViolated] = int64(summary.ViolatedCount)
}

// BucketCount returns the last recorded count for a bucket.
func (m *Metrics) BucketCount(bucket sla.Bucket) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bucketCount[bucket]
}
