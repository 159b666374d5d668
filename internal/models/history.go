package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ViewEvent represents one browsing-history entry stored in MongoDB
type ViewEvent struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID      uint               `json:"user_id" bson:"user_id"`
	SubjectType string             `json:"subject_type" bson:"subject_type"`
	SubjectID   uint               `json:"subject_id" bson:"subject_id"`
	ViewedAt    time.Time          `json:"viewed_at" bson:"viewed_at"`
}

// RecordViewRequest defines the request body for recording a browsing event
type RecordViewRequest struct {
	UserID      uint   `json:"user_id" validate:"required"`
	SubjectType string `json:"subject_type" validate:"required,oneof=relic museum moment"`
	SubjectID   uint   `json:"subject_id" validate:"required"`
}
