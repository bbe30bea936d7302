package services

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/Deryl7/StudyTrack/internal/config"
)

// HealthStatus represents the health check response structure
type HealthStatus struct {
	Status         string `json:"status"`
	WorkerID       string `json:"worker_id"`
	Uptime         string `json:"uptime"`
	RunsCompleted  int64  `json:"runs_completed"`
	TasksScanned   int64  `json:"tasks_scanned"`
	PushSent       int64  `json:"push_sent"`
	SkippedInvalid int64  `json:"skipped_invalid"`
	SkippedNoToken int64  `json:"skipped_no_token"`
	TotalErrors    int64  `json:"total_errors"`
}

// StartHealthCheckServer starts the HTTP server for health checks
func StartHealthCheckServer(metrics *Metrics) {
	go func() {
		http.HandleFunc("/health", HealthCheckHandler(metrics))
		http.HandleFunc("/healthz", HealthCheckHandler(metrics)) // Alternative endpoint for k8s

		addr := ":" + config.HealthCheckPort
		log.Printf("Health check server starting on %s\n", addr)

		if err := http.ListenAndServe(addr, nil); err != nil {
			log.Printf("Health check server error: %v\n", err)
		}
	}()
}

// HealthCheckHandler returns an HTTP handler for health checks
func HealthCheckHandler(metrics *Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uptime := time.Since(metrics.StartTime)

		health := HealthStatus{
			Status:         "healthy",
			WorkerID:       config.WorkerId,
			Uptime:         uptime.String(),
			RunsCompleted:  metrics.RunsCompleted.Load(),
			TasksScanned:   metrics.TasksScanned.Load(),
			PushSent:       metrics.PushSent.Load(),
			SkippedInvalid: metrics.SkippedInvalid.Load(),
			SkippedNoToken: metrics.SkippedNoToken.Load(),
			TotalErrors:    metrics.TotalErrors(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(health)
	}
}
