package repositories

import (
	"fmt"

	"github.com/BUCT-CS2201/HandheldMuseum/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	CreateComment(comment *models.Comment, imageIDs []uint) error
	GetCommentByID(id uint) (*models.Comment, error)
	GetThreadRows(subjectType string, subjectID uint) ([]models.Comment, error)
	SoftDeleteComment(comment *models.Comment) error
	ToggleCommentLike(commentID, userID uint) (likeCount int, liked bool, err error)
	GetLikedCommentIDs(userID uint, commentIDs []uint) (map[uint]bool, error)
	SetStatus(id uint, status int) error
	ListPending(limit int) ([]models.Comment, error)
}

// PostgresCommentRepository implements CommentRepository for PostgreSQL
type PostgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

// CreateComment inserts a comment, claims its attached images and bumps the
// parent reply counter and subject comment counter, all in one transaction.
// A pending reply still counts toward its parent's reply_count; moderation
// later decides visibility, not the counter.
func (r *PostgresCommentRepository) CreateComment(comment *models.Comment, imageIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if comment.ParentID != nil {
			var parent models.Comment
			if err := tx.First(&parent, *comment.ParentID).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					return ErrNotFound
				}
				return err
			}
			if parent.SubjectType != comment.SubjectType || parent.SubjectID != comment.SubjectID {
				return fmt.Errorf("parent comment belongs to a different subject")
			}
		}

		if err := tx.Create(comment).Error; err != nil {
			return err
		}

		if len(imageIDs) > 0 {
			res := tx.Model(&models.Image{}).
				Where("id IN ? AND user_id = ? AND comment_id IS NULL AND moment_id IS NULL", imageIDs, comment.UserID).
				UpdateColumn("comment_id", comment.ID)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected != int64(len(imageIDs)) {
				return fmt.Errorf("image association failed: %d of %d images claimable", res.RowsAffected, len(imageIDs))
			}
		}

		if comment.ParentID != nil {
			res := tx.Model(&models.Comment{}).Where("id = ?", *comment.ParentID).
				UpdateColumn("reply_count", gorm.Expr("reply_count + ?", 1))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrNotFound
			}
		}

		return adjustSubjectCounter(tx, comment.SubjectType, comment.SubjectID, "comment_count", 1)
	})
}

// GetCommentByID retrieves a comment by ID from PostgreSQL
func (r *PostgresCommentRepository) GetCommentByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetThreadRows retrieves every approved, non-deleted comment attached to a
// subject, oldest first. The handler assembles these flat rows into a tree.
func (r *PostgresCommentRepository) GetThreadRows(subjectType string, subjectID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.
		Where("subject_type = ? AND subject_id = ? AND status = ?", subjectType, subjectID, models.ReviewStatusApproved).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// SoftDeleteComment marks a comment deleted and walks back the counters its
// creation bumped. Deleting a root comment leaves no parent counter to touch.
func (r *PostgresCommentRepository) SoftDeleteComment(comment *models.Comment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Comment{}, comment.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}

		if comment.ParentID != nil {
			res := tx.Model(&models.Comment{}).Where("id = ?", *comment.ParentID).
				UpdateColumn("reply_count", gorm.Expr("reply_count - ?", 1))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrNotFound
			}
		}

		return adjustSubjectCounter(tx, comment.SubjectType, comment.SubjectID, "comment_count", -1)
	})
}

// ToggleCommentLike flips the (comment, user) like relation and keeps the
// comment's like_count in step, returning the post-toggle state. The whole
// check-then-act sequence runs in one transaction so concurrent toggles
// cannot interleave between the existence check and the insert.
func (r *PostgresCommentRepository) ToggleCommentLike(commentID, userID uint) (int, bool, error) {
	var likeCount int
	var liked bool

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.CommentLike
		err := tx.Where("comment_id = ? AND user_id = ?", commentID, userID).First(&existing).Error

		var delta int
		switch err {
		case nil:
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			delta, liked = -1, false
		case gorm.ErrRecordNotFound:
			like := models.CommentLike{CommentID: commentID, UserID: userID}
			if err := tx.Create(&like).Error; err != nil {
				return err
			}
			delta, liked = 1, true
		default:
			return err
		}

		res := tx.Model(&models.Comment{}).Where("id = ?", commentID).
			UpdateColumn("like_count", gorm.Expr("like_count + ?", delta))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}

		var comment models.Comment
		if err := tx.Select("like_count").First(&comment, commentID).Error; err != nil {
			return err
		}
		likeCount = comment.LikeCount
		return nil
	})
	if err != nil {
		return 0, false, err
	}
	return likeCount, liked, nil
}

// GetLikedCommentIDs reports which of the given comments a user has liked
func (r *PostgresCommentRepository) GetLikedCommentIDs(userID uint, commentIDs []uint) (map[uint]bool, error) {
	liked := make(map[uint]bool, len(commentIDs))
	if len(commentIDs) == 0 {
		return liked, nil
	}
	var rows []models.CommentLike
	if err := r.db.Where("user_id = ? AND comment_id IN ?", userID, commentIDs).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		liked[row.CommentID] = true
	}
	return liked, nil
}

// SetStatus records a moderation decision for a comment
func (r *PostgresCommentRepository) SetStatus(id uint, status int) error {
	res := r.db.Model(&models.Comment{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListPending retrieves comments awaiting review, oldest first
func (r *PostgresCommentRepository) ListPending(limit int) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("status = ?", models.ReviewStatusPending).
		Order("created_at ASC").Limit(limit).Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
