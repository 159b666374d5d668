package handlers

import (
	"time"

	"github.com/BUCT-CS2201/HandheldMuseum/internal/models"
)

// CommentNode is one node of the nested comment tree returned to readers.
// The tree is exactly two levels deep: root comments carry their direct
// replies, replies carry nothing.
type CommentNode struct {
	CommentID  uint               `json:"comment_id"`
	UserID     uint               `json:"user_id"`
	UserName   string             `json:"username"`
	Content    string             `json:"content"`
	LikeCount  int                `json:"like_count"`
	ReplyCount int                `json:"reply_count"`
	IsLiked    bool               `json:"is_liked"`
	CreatedAt  time.Time          `json:"create_time"`
	Images     []models.ImageMeta `json:"images"`
	Replies    []*CommentNode     `json:"replies,omitempty"`
}

// buildCommentTree groups flat comment rows into root comments and their
// replies. Rows are expected pre-filtered to approved, non-deleted comments
// of one subject, ordered oldest first; that order is preserved.
//
// A reply whose parent is missing from the row set (deleted, unapproved, or
// itself a reply) is dropped without trace.
func buildCommentTree(rows []models.Comment, names map[uint]string, images map[uint][]models.ImageMeta, liked map[uint]bool) []*CommentNode {
	roots := make([]*CommentNode, 0, len(rows))
	index := make(map[uint]*CommentNode, len(rows))

	for i := range rows {
		row := &rows[i]
		if row.ParentID != nil {
			continue
		}
		node := newCommentNode(row, names, images, liked)
		roots = append(roots, node)
		index[row.ID] = node
	}

	for i := range rows {
		row := &rows[i]
		if row.ParentID == nil {
			continue
		}
		parent, ok := index[*row.ParentID]
		if !ok {
			continue // orphan reply, silently dropped
		}
		parent.Replies = append(parent.Replies, newCommentNode(row, names, images, liked))
	}

	return roots
}

func newCommentNode(row *models.Comment, names map[uint]string, images map[uint][]models.ImageMeta, liked map[uint]bool) *CommentNode {
	node := &CommentNode{
		CommentID:  row.ID,
		UserID:     row.UserID,
		UserName:   names[row.UserID],
		Content:    row.Content,
		LikeCount:  row.LikeCount,
		ReplyCount: row.ReplyCount,
		IsLiked:    liked[row.ID],
		CreatedAt:  row.CreatedAt,
		Images:     images[row.ID],
	}
	if node.Images == nil {
		node.Images = []models.ImageMeta{}
	}
	return node
}

// commentIDs collects the IDs of a row set for batch lookups
func commentIDs(rows []models.Comment) []uint {
	ids := make([]uint, 0, len(rows))
	for i := range rows {
		ids = append(ids, rows[i].ID)
	}
	return ids
}

// commentUserIDs collects the distinct author IDs of a row set
func commentUserIDs(rows []models.Comment) []uint {
	seen := make(map[uint]bool, len(rows))
	ids := make([]uint, 0, len(rows))
	for i := range rows {
		if !seen[rows[i].UserID] {
			seen[rows[i].UserID] = true
			ids = append(ids, rows[i].UserID)
		}
	}
	return ids
}
