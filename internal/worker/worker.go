package worker

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"firebase.google.com/go/v4/messaging"
	"golang.org/x/time/rate"

	"github.com/Deryl7/StudyTrack/internal/models"
	"github.com/Deryl7/StudyTrack/internal/services"
)

// TaskSource scans the task store for unfinished tasks with a deadline
// in [start, end] inclusive, across all owners.
type TaskSource interface {
	TasksDueBetween(ctx context.Context, start, end time.Time) ([]models.Task, error)
}

// TokenSource resolves an owner's notification token. "" means the
// owner has no deliverable device; that is not an error.
type TokenSource interface {
	NotificationToken(ctx context.Context, ownerId string) (string, error)
}

// PushSender is satisfied by *messaging.Client.
type PushSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// Checker runs the daily deadline check: one reminder window per
// configured offset, each scanned and dispatched independently.
type Checker struct {
	tasks   TaskSource
	users   TokenSource
	sender  PushSender
	limiter *rate.Limiter
	metrics *services.Metrics
	loc     *time.Location
}

func NewChecker(tasks TaskSource, users TokenSource, sender PushSender, limiter *rate.Limiter, metrics *services.Metrics, loc *time.Location) *Checker {
	return &Checker{
		tasks:   tasks,
		users:   users,
		sender:  sender,
		limiter: limiter,
		metrics: metrics,
		loc:     loc,
	}
}

// RunDailyCheck processes every offset window concurrently and returns
// the aggregated send counts. Failures inside one window never abort a
// sibling window; a fully failed run still returns a zero summary
// rather than an error.
func (c *Checker) RunDailyCheck(ctx context.Context, ref time.Time, offsetDays []int) models.Summary {
	log.Println("Starting daily deadline check...")

	var wg sync.WaitGroup
	var sent, failed atomic.Int64

	for _, offset := range offsetDays {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			s, f := c.checkAndNotify(ctx, WindowFor(ref, offset, c.loc))
			sent.Add(int64(s))
			failed.Add(int64(f))
		}(offset)
	}
	wg.Wait()

	log.Printf("Daily deadline check complete: %d sent, %d failed\n", sent.Load(), failed.Load())
	return models.Summary{Sent: int(sent.Load()), Failed: int(failed.Load())}
}

// checkAndNotify scans one window and dispatches a notification per
// eligible task. Per-task lookups and sends run concurrently and are
// awaited jointly; any single task's failure is logged and isolated.
func (c *Checker) checkAndNotify(ctx context.Context, win models.ReminderWindow) (sent, failed int) {
	tasks, err := c.tasks.TasksDueBetween(ctx, win.Start, win.End)
	if err != nil {
		log.Printf("Error querying %s window: %v\n", win.Label, err)
		c.metrics.QueryErrors.Add(1)
		return 0, 0
	}
	c.metrics.TasksScanned.Add(int64(len(tasks)))

	if len(tasks) == 0 {
		return 0, 0
	}

	var wg sync.WaitGroup
	var okCount, errCount atomic.Int64

	for _, task := range tasks {
		// Incomplete documents are expected, skip without logging
		if task.OwnerId == "" || task.CourseName == "" {
			c.metrics.SkippedInvalid.Add(1)
			continue
		}

		wg.Add(1)
		go func(task models.Task) {
			defer wg.Done()

			token, err := c.users.NotificationToken(ctx, task.OwnerId)
			if err != nil {
				log.Printf("Error on task %s: %v\n", task.Id, err)
				c.metrics.LookupErrors.Add(1)
				return
			}
			if token == "" {
				c.metrics.SkippedNoToken.Add(1)
				return
			}

			if c.limiter != nil {
				if err := c.limiter.Wait(ctx); err != nil {
					log.Printf("Rate limiter error for task %s: %v\n", task.Id, err)
					c.metrics.RateLimitErrors.Add(1)
					return
				}
			}

			if _, err := c.sender.Send(ctx, ComposeMessage(task, token, win)); err != nil {
				log.Printf("Push FAILED - Task: %s, Error: %v\n", task.Id, err)
				c.metrics.PushErrors.Add(1)
				errCount.Add(1)
				return
			}
			c.metrics.PushSent.Add(1)
			okCount.Add(1)
		}(task)
	}
	wg.Wait()

	sent = int(okCount.Load())
	failed = int(errCount.Load())
	log.Printf("Window %s: %d tasks matched, %d sent, %d failed\n", win.Label, len(tasks), sent, failed)
	return sent, failed
}
