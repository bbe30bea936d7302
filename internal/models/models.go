package models

import "time"

// Task is one study task document. Tasks live in per-user nested
// collections, so the worker reads them through a collection group query.
// Field tags carry the wire names the StudyTrack app writes.
type Task struct {
	Id         string    `firestore:"-"`
	OwnerId    string    `firestore:"owner_id"`
	CourseName string    `firestore:"courseName"`
	Title      string    `firestore:"title"`
	Type       string    `firestore:"type"` // "Exam" or anything else (assignment)
	Deadline   time.Time `firestore:"deadline"`
	IsDone     bool      `firestore:"isDone"`
}

// User holds the only field this worker reads from a users/{id} document.
// An empty token means the user has no deliverable device.
type User struct {
	FcmToken string `firestore:"fcm_token"`
}

// ReminderWindow is one full local calendar day to scan for deadlines.
// Start is 00:00:00.000 and End 23:59:59.999 of the target day; both
// bounds are inclusive.
type ReminderWindow struct {
	Start time.Time
	End   time.Time
	Label string // "H-3", "H-1", ...
}

// Summary aggregates send outcomes across all windows of one run.
type Summary struct {
	Sent   int
	Failed int
}
