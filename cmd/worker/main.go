package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"github.com/Deryl7/StudyTrack/internal/config"
	"github.com/Deryl7/StudyTrack/internal/integrations"
	"github.com/Deryl7/StudyTrack/internal/services"
	"github.com/Deryl7/StudyTrack/internal/worker"
)

func main() {
	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log.Println("Worker starting, id=", config.WorkerId)

	loc, err := time.LoadLocation(config.TimeZone)
	if err != nil {
		log.Fatalf("Invalid TIME_ZONE %q: %v", config.TimeZone, err)
	}

	// Create metrics instance
	metrics := services.NewMetrics()

	// FCM caps sustained message throughput, keep sends under it
	limiter := rate.NewLimiter(rate.Limit(config.SendRateLimit), config.SendRateLimit)

	// Connect to Firebase (Firestore + FCM)
	_, fsClient, fcmClient := integrations.InitFirebase(ctx)
	defer fsClient.Close()

	// Start metrics logger (logs every 30 seconds)
	go services.LogMetricsPeriodically(ctx, metrics, 30*time.Second)

	// Start health check server
	go services.StartHealthCheckServer(metrics)

	store := integrations.NewFirestoreStore(fsClient)
	checker := worker.NewChecker(store, store, fcmClient, limiter, metrics, loc)

	log.Println("worker started, id=", config.WorkerId)

	if config.RunOnce {
		runCheck(ctx, checker, metrics)
		log.Println("RUN_ONCE set, exiting")
		return
	}

	// Main loop fires once per day at the configured local time. A
	// single loop goroutine means runs can never overlap.
	for {
		next := nextRunAt(time.Now(), loc)
		log.Printf("Next check scheduled at %s\n", next.Format(time.RFC3339))

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			log.Println("Shutting down...")
			services.LogMetrics(metrics)
			log.Println("Shut down complete")
			return

		case <-timer.C:
			runCheck(ctx, checker, metrics)
		}
	}
}

func runCheck(ctx context.Context, checker *worker.Checker, metrics *services.Metrics) {
	startTime := time.Now()
	summary := checker.RunDailyCheck(ctx, time.Now(), config.ReminderOffsetDays)
	metrics.TotalRunTimeMs.Add(time.Since(startTime).Milliseconds())
	metrics.RunsCompleted.Add(1)
	log.Printf("Run complete: %d sent, %d failed (%dms)\n",
		summary.Sent, summary.Failed, time.Since(startTime).Milliseconds())
}

// nextRunAt returns the next occurrence of the configured wall-clock
// time in loc, strictly after now.
func nextRunAt(now time.Time, loc *time.Location) time.Time {
	y, m, d := now.In(loc).Date()
	next := time.Date(y, m, d, config.CheckHour, config.CheckMinute, 0, 0, loc)
	if !next.After(now) {
		next = time.Date(y, m, d+1, config.CheckHour, config.CheckMinute, 0, 0, loc)
	}
	return next
}
