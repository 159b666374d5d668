package models

import "gorm.io/gorm"

// Moderation status shared by comments, moments and uploaded images.
// Everything is created pending and needs an explicit review before readers
// can see it.
const (
	ReviewStatusPending  = 0
	ReviewStatusApproved = 1
	ReviewStatusRejected = 2
)

// Comment represents a user comment attached to a subject (relic, museum or
// moment). A non-nil ParentID makes it a reply to another comment.
type Comment struct {
	gorm.Model
	SubjectType string `json:"subject_type" gorm:"size:10;index:idx_comment_subject"`
	SubjectID   uint   `json:"subject_id" gorm:"index:idx_comment_subject"`
	UserID      uint   `json:"user_id" gorm:"index"`
	Content     string `json:"content" gorm:"type:text"`
	ParentID    *uint  `json:"parent_id" gorm:"index"` // nil for root comments
	Status      int    `json:"status" gorm:"default:0;index"`
	LikeCount   int    `json:"like_count" gorm:"default:0"`
	ReplyCount  int    `json:"reply_count" gorm:"default:0"`
}

// CreateCommentRequest defines the request body for posting a comment
type CreateCommentRequest struct {
	UserID      uint   `json:"user_id" validate:"required"`
	Content     string `json:"content" validate:"required,min=1,max=1000"`
	ParentID    *uint  `json:"parent_id,omitempty"`
	ImageIDs    []uint `json:"image_ids,omitempty"`
	SubjectType string `json:"subject_type,omitempty"`
}

// DeleteCommentRequest defines the request body for removing a comment
type DeleteCommentRequest struct {
	UserID uint `json:"user_id" validate:"required"`
}

// ToggleLikeRequest defines the request body for like/favorite toggles
type ToggleLikeRequest struct {
	UserID      uint   `json:"user_id" validate:"required"`
	SubjectType string `json:"subject_type,omitempty"`
}

// ReviewRequest defines the request body for a moderation decision
type ReviewRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}
