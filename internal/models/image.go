package models

import "gorm.io/gorm"

// Image represents one uploaded image. It is created unassociated with
// status pending; publishing a comment or moment later claims it via
// CommentID or MomentID (at most one of the two is set).
type Image struct {
	gorm.Model
	UserID     uint   `json:"user_id" gorm:"index"`
	Suffix     string `json:"suffix" gorm:"size:10"`
	Status     int    `json:"status" gorm:"default:0;index"`
	StorageKey string `json:"-" gorm:"size:40;uniqueIndex"` // file name on disk, without suffix
	CommentID  *uint  `json:"comment_id,omitempty" gorm:"index"`
	MomentID   *uint  `json:"moment_id,omitempty" gorm:"index"`
}

// ImageMeta is the reader-facing shape of an attached image
type ImageMeta struct {
	ImageID uint   `json:"image_id"`
	Suffix  string `json:"suffix"`
}
