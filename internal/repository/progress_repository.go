package repository

import (
	"context"

	"interview-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProgressRepository persists one rollup document per user.
type ProgressRepository struct {
	Col *mongo.Collection
}

func NewProgressRepository(db *mongo.Database) *ProgressRepository {
	return &ProgressRepository{Col: db.Collection("user_progress")}
}

func (r *ProgressRepository) FindByUser(ctx context.Context, userID string) (*models.UserProgress, error) {
	var progress models.UserProgress
	err := r.Col.FindOne(ctx, bson.M{"_id": userID}).Decode(&progress)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *ProgressRepository) Save(ctx context.Context, progress *models.UserProgress) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.Col.ReplaceOne(ctx, bson.M{"_id": progress.UserID}, progress, opts)
	return err
}
