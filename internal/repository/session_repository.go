package repository

import (
	"context"

	"interview-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SessionRepository persists sessions as whole documents, one per session.
type SessionRepository struct {
	Col *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{Col: db.Collection("sessions")}
}

func (r *SessionRepository) FindByID(ctx context.Context, id string) (*models.InterviewSession, error) {
	var session models.InterviewSession
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) FindByUser(ctx context.Context, userID string) ([]*models.InterviewSession, error) {
	opts := options.Find().SetSort(bson.M{"created_at": 1})
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var sessions []*models.InterviewSession
	for cur.Next(ctx) {
		var session models.InterviewSession
		if err := cur.Decode(&session); err != nil {
			return nil, err
		}
		sessions = append(sessions, &session)
	}
	return sessions, cur.Err()
}

// Save writes the full session document, inserting on first save.
func (r *SessionRepository) Save(ctx context.Context, session *models.InterviewSession) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.Col.ReplaceOne(ctx, bson.M{"_id": session.ID}, session, opts)
	return err
}
