package models

import "time"

// Like represents one user's like of one subject. The row itself is the
// source of truth; subject like counters are derived from it.
type Like struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	SubjectType string    `json:"subject_type" gorm:"size:10;uniqueIndex:idx_subject_user_like"`
	SubjectID   uint      `json:"subject_id" gorm:"uniqueIndex:idx_subject_user_like"`
	UserID      uint      `json:"user_id" gorm:"index;uniqueIndex:idx_subject_user_like"`
	CreatedAt   time.Time `json:"created_at"`
}

// Favorite represents one user's favorite of one subject
type Favorite struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	SubjectType string    `json:"subject_type" gorm:"size:10;uniqueIndex:idx_subject_user_favorite"`
	SubjectID   uint      `json:"subject_id" gorm:"uniqueIndex:idx_subject_user_favorite"`
	UserID      uint      `json:"user_id" gorm:"index;uniqueIndex:idx_subject_user_favorite"`
	CreatedAt   time.Time `json:"created_at"`
}
