package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio-api/internal/intake"
	"portfolio-api/internal/models"
	"portfolio-api/internal/query"
)

// stubStore records inserts and serves canned finds.
type stubStore struct {
	inserted []models.Submission
	found    []models.Submission
	err      error
}

func (s *stubStore) Insert(ctx context.Context, sub *models.Submission) (primitive.ObjectID, error) {
	if s.err != nil {
		return primitive.NilObjectID, s.err
	}
	s.inserted = append(s.inserted, *sub)
	return primitive.NewObjectID(), nil
}

func (s *stubStore) Find(ctx context.Context, p query.ListParams) ([]models.Submission, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.found, nil
}

func TestSubmitStampsCreatedAt(t *testing.T) {
	store := &stubStore{}
	svc := NewSubmissionService(store)

	before := time.Now().UTC()
	id, err := svc.Submit(context.Background(), map[string]any{
		"name": "Ada", "message": "hello", "agree": true,
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		t.Errorf("returned id %q is not a valid ObjectID hex", id)
	}
	if len(store.inserted) != 1 {
		t.Fatalf("inserted %d records, want 1", len(store.inserted))
	}
	got := store.inserted[0]
	if got.CreatedAt.Before(before) {
		t.Errorf("createdAt %v predates the call (%v)", got.CreatedAt, before)
	}
	if got.CreatedAt.Location() != time.UTC {
		t.Errorf("createdAt not UTC: %v", got.CreatedAt.Location())
	}
}

// A client-supplied createdAt must never survive intake.
func TestSubmitIgnoresClientCreatedAt(t *testing.T) {
	store := &stubStore{}
	svc := NewSubmissionService(store)
	svc.now = func() time.Time { return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC) }

	_, err := svc.Submit(context.Background(), map[string]any{
		"name": "Ada", "message": "hello", "agree": true,
		"createdAt": "1999-01-01T00:00:00Z",
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	want := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	if !store.inserted[0].CreatedAt.Equal(want) {
		t.Errorf("createdAt = %v, want server time %v", store.inserted[0].CreatedAt, want)
	}
}

func TestSubmitValidationShortCircuits(t *testing.T) {
	store := &stubStore{}
	svc := NewSubmissionService(store)

	_, err := svc.Submit(context.Background(), map[string]any{
		"name": "", "message": "hi", "agree": true,
	})
	var verr *intake.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(store.inserted) != 0 {
		t.Errorf("validation failure persisted %d records", len(store.inserted))
	}
}

func TestSubmitStoreErrorIsNotValidation(t *testing.T) {
	store := &stubStore{err: errors.New("connection reset")}
	svc := NewSubmissionService(store)

	_, err := svc.Submit(context.Background(), map[string]any{
		"name": "Ada", "message": "hello", "agree": true,
	})
	if err == nil {
		t.Fatal("expected store error")
	}
	var verr *intake.ValidationError
	if errors.As(err, &verr) {
		t.Error("store error must not surface as a validation error")
	}
}

func TestListSerialization(t *testing.T) {
	id := primitive.NewObjectID()
	created := time.Date(2026, 8, 15, 9, 30, 0, 0, time.UTC)
	store := &stubStore{found: []models.Submission{
		{ID: id, Name: "Ada", Message: "hello", Agree: true, Topics: []string{"tech"}, CreatedAt: created},
		{ID: primitive.NewObjectID(), Name: "Bob", Message: "hi", Agree: true},
	}}
	svc := NewSubmissionService(store)

	items, err := svc.List(context.Background(), query.ListParams{Limit: 20})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].ID != id.Hex() {
		t.Errorf("id = %q, want %q", items[0].ID, id.Hex())
	}
	if items[0].CreatedAt != "2026-08-15T09:30:00Z" {
		t.Errorf("createdAt = %q, want RFC 3339 UTC", items[0].CreatedAt)
	}
	// A record without createdAt stays without one; no default is invented.
	if items[1].CreatedAt != "" {
		t.Errorf("absent createdAt serialized as %q", items[1].CreatedAt)
	}
	// Bob never set topics; the wire form still carries an empty array.
	if items[1].Topics == nil || len(items[1].Topics) != 0 {
		t.Errorf("topics = %#v, want empty slice", items[1].Topics)
	}
}
