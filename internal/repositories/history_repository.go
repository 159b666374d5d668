package repositories

import (
	"context"
	"time"

	"github.com/BUCT-CS2201/HandheldMuseum/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// HistoryRepository defines the interface for browsing-history operations
type HistoryRepository interface {
	RecordView(ctx context.Context, event *models.ViewEvent) error
	GetHistoryByUser(ctx context.Context, userID uint, skip, limit int64) ([]models.ViewEvent, error)
	ClearHistory(ctx context.Context, userID uint) error
}

// MongoHistoryRepository implements HistoryRepository for MongoDB
type MongoHistoryRepository struct {
	collection *mongo.Collection
}

// NewMongoHistoryRepository creates a new MongoHistoryRepository
func NewMongoHistoryRepository(db *mongo.Database) *MongoHistoryRepository {
	return &MongoHistoryRepository{collection: db.Collection("view_events")}
}

// RecordView appends one browsing event to the history log
func (r *MongoHistoryRepository) RecordView(ctx context.Context, event *models.ViewEvent) error {
	event.ID = primitive.NewObjectID()
	event.ViewedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, event)
	return err
}

// GetHistoryByUser retrieves a user's browsing history, most recent first
func (r *MongoHistoryRepository) GetHistoryByUser(ctx context.Context, userID uint, skip, limit int64) ([]models.ViewEvent, error) {
	var events []models.ViewEvent
	findOptions := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{{Key: "viewed_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// ClearHistory deletes a user's entire browsing history
func (r *MongoHistoryRepository) ClearHistory(ctx context.Context, userID uint) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}
