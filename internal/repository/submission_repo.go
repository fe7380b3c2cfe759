package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"portfolio-api/internal/db"
	"portfolio-api/internal/models"
	"portfolio-api/internal/query"
)

const SubmissionsCollection = "submissions"

type SubmissionRepo struct {
	db *db.Mongo
}

func NewSubmissionRepo(database *db.Mongo) *SubmissionRepo {
	return &SubmissionRepo{db: database}
}

func (r *SubmissionRepo) collection() (*mongo.Collection, error) {
	return r.db.Collection(SubmissionsCollection)
}

// EnsureIndexes creates the indexes the list filters and sort rely on.
func (r *SubmissionRepo) EnsureIndexes(ctx context.Context) error {
	c, err := r.collection()
	if err != nil {
		return err
	}
	_, err = c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "topics", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("repository: create indexes: %w", err)
	}
	return nil
}

// Insert persists one submission and returns the store-assigned ID.
func (r *SubmissionRepo) Insert(ctx context.Context, sub *models.Submission) (primitive.ObjectID, error) {
	c, err := r.collection()
	if err != nil {
		return primitive.NilObjectID, err
	}
	result, err := c.InsertOne(ctx, sub)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("repository: insert submission: %w", err)
	}
	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("repository: unexpected inserted ID type %T", result.InsertedID)
	}
	return id, nil
}

// Find returns submissions matching p, newest first, capped at p.Limit.
func (r *SubmissionRepo) Find(ctx context.Context, p query.ListParams) ([]models.Submission, error) {
	c, err := r.collection()
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(p.Limit)

	cursor, err := c.Find(ctx, buildFilter(p), opts)
	if err != nil {
		return nil, fmt.Errorf("repository: find submissions: %w", err)
	}
	defer cursor.Close(ctx)

	subs := []models.Submission{}
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, fmt.Errorf("repository: decode submissions: %w", err)
	}
	return subs, nil
}

// buildFilter combines the provided filters with logical AND; absent
// filters impose no constraint. A topic filter matches documents whose
// topics array contains the value.
func buildFilter(p query.ListParams) bson.M {
	filter := bson.M{}
	if p.Email != "" {
		filter["email"] = p.Email
	}
	if p.Topic != "" {
		filter["topics"] = p.Topic
	}
	created := bson.M{}
	if !p.From.IsZero() {
		created["$gte"] = p.From
	}
	if !p.ToExclusive.IsZero() {
		created["$lt"] = p.ToExclusive
	}
	if len(created) > 0 {
		filter["createdAt"] = created
	}
	return filter
}
