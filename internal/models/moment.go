package models

import "gorm.io/gorm"

// Moment represents a user-posted moment (dynamic) with optional attached
// images. Moments are subjects: they can be commented on, liked and favorited.
type Moment struct {
	gorm.Model
	UserID        uint   `json:"user_id" gorm:"index"`
	Content       string `json:"content" gorm:"type:text"`
	Status        int    `json:"status" gorm:"default:0;index"`
	LikeCount     int    `json:"like_count" gorm:"default:0"`
	FavoriteCount int    `json:"favorite_count" gorm:"default:0"`
	CommentCount  int    `json:"comment_count" gorm:"default:0"`
}

// CreateMomentRequest defines the request body for publishing a moment.
// Content may be empty when images are attached.
type CreateMomentRequest struct {
	UserID   uint   `json:"user_id" validate:"required"`
	Content  string `json:"content" validate:"max=2000"`
	ImageIDs []uint `json:"image_ids,omitempty"`
}

// MomentView is the reader-facing shape of a moment in the feed
type MomentView struct {
	MomentID     uint        `json:"moment_id"`
	Content      string      `json:"content"`
	UserName     string      `json:"username"`
	LikeCount    int         `json:"like_count"`
	CommentCount int         `json:"comment_count"`
	CreatedAt    string      `json:"create_time"`
	Images       []ImageMeta `json:"images"`
}
