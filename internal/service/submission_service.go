package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio-api/internal/intake"
	"portfolio-api/internal/models"
	"portfolio-api/internal/query"
)

// Store is the slice of the repository the service needs. Tests substitute
// an in-memory implementation.
type Store interface {
	Insert(ctx context.Context, sub *models.Submission) (primitive.ObjectID, error)
	Find(ctx context.Context, p query.ListParams) ([]models.Submission, error)
}

type SubmissionService struct {
	store Store
	now   func() time.Time
}

func NewSubmissionService(store Store) *SubmissionService {
	return &SubmissionService{store: store, now: time.Now}
}

// Submit validates body, stamps createdAt, and persists the submission.
// Validation failures return *intake.ValidationError before anything is
// written; nothing is ever partially persisted.
func (s *SubmissionService) Submit(ctx context.Context, body map[string]any) (string, error) {
	sub, err := intake.Parse(body)
	if err != nil {
		return "", err
	}
	sub.CreatedAt = s.now().UTC()

	id, err := s.store.Insert(ctx, sub)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

// List returns matching submissions newest first, serialized for the wire.
func (s *SubmissionService) List(ctx context.Context, p query.ListParams) ([]models.SubmissionView, error) {
	subs, err := s.store.Find(ctx, p)
	if err != nil {
		return nil, err
	}
	items := make([]models.SubmissionView, 0, len(subs))
	for i := range subs {
		items = append(items, subs[i].View())
	}
	return items, nil
}
