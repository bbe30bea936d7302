package integrations

import (
	"context"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Deryl7/StudyTrack/internal/constants"
	"github.com/Deryl7/StudyTrack/internal/models"
)

// FirestoreStore reads tasks and user tokens from Firestore. Tasks are
// nested under per-user documents, so the deadline scan runs as a
// collection group query across every "tasks" collection at once.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// TasksDueBetween returns every unfinished task whose deadline falls in
// [start, end] inclusive, regardless of owner. A malformed document is
// logged and skipped rather than failing the scan.
func (s *FirestoreStore) TasksDueBetween(ctx context.Context, start, end time.Time) ([]models.Task, error) {
	iter := s.client.CollectionGroup(constants.TasksCollection).
		Where("isDone", "==", false).
		Where("deadline", ">=", start).
		Where("deadline", "<=", end).
		Documents(ctx)
	defer iter.Stop()

	var tasks []models.Task
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("query tasks: %w", err)
		}

		var t models.Task
		if err := doc.DataTo(&t); err != nil {
			log.Printf("Skipping malformed task %s: %v\n", doc.Ref.ID, err)
			continue
		}
		t.Id = doc.Ref.ID
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// NotificationToken returns the owner's FCM token, or "" when the user
// document does not exist or carries no token. Only real store failures
// are returned as errors.
func (s *FirestoreStore) NotificationToken(ctx context.Context, ownerId string) (string, error) {
	doc, err := s.client.Collection(constants.UsersCollection).Doc(ownerId).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("lookup user %s: %w", ownerId, err)
	}

	var u models.User
	if err := doc.DataTo(&u); err != nil {
		return "", fmt.Errorf("decode user %s: %w", ownerId, err)
	}
	return u.FcmToken, nil
}
