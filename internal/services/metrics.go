package services

import (
	"context"
	"log"
	"sync/atomic"
	"time"
)

// Metrics tracks worker performance statistics
type Metrics struct {
	// Runs
	RunsCompleted atomic.Int64
	TasksScanned  atomic.Int64

	// Notifications
	PushSent       atomic.Int64
	SkippedInvalid atomic.Int64
	SkippedNoToken atomic.Int64

	// Errors
	PushErrors      atomic.Int64
	QueryErrors     atomic.Int64
	LookupErrors    atomic.Int64
	RateLimitErrors atomic.Int64

	// Timing
	TotalRunTimeMs atomic.Int64
	StartTime      time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// TotalErrors sums all error counters
func (m *Metrics) TotalErrors() int64 {
	return m.PushErrors.Load() +
		m.QueryErrors.Load() +
		m.LookupErrors.Load() +
		m.RateLimitErrors.Load()
}

// LogMetricsPeriodically logs metrics at regular intervals
func LogMetricsPeriodically(ctx context.Context, m *Metrics, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// Log final metrics before shutdown
			LogMetrics(m)
			return
		case <-ticker.C:
			LogMetrics(m)
		}
	}
}

// LogMetrics outputs current metrics to the log
func LogMetrics(m *Metrics) {
	uptime := time.Since(m.StartTime)

	runs := m.RunsCompleted.Load()

	avgRunTime := float64(0)
	if runs > 0 {
		avgRunTime = float64(m.TotalRunTimeMs.Load()) / float64(runs)
	}

	log.Println("========== METRICS REPORT ==========")
	log.Printf("Uptime: %v", uptime.Round(time.Second))
	log.Printf("Runs Completed: %d", runs)
	log.Printf("Tasks Scanned: %d", m.TasksScanned.Load())
	log.Printf("Notifications:")
	log.Printf("  - Push Sent: %d", m.PushSent.Load())
	log.Printf("  - Skipped (invalid task): %d", m.SkippedInvalid.Load())
	log.Printf("  - Skipped (no token): %d", m.SkippedNoToken.Load())
	log.Printf("Errors:")
	log.Printf("  - Push Errors: %d", m.PushErrors.Load())
	log.Printf("  - Query Errors: %d", m.QueryErrors.Load())
	log.Printf("  - Lookup Errors: %d", m.LookupErrors.Load())
	log.Printf("  - Rate Limit Errors: %d", m.RateLimitErrors.Load())
	log.Printf("Performance:")
	log.Printf("  - Avg Run Time: %.2f ms", avgRunTime)
	log.Println("====================================")
}
