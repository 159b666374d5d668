package handlers

import (
	"testing"
	"time"

	"github.com/BUCT-CS2201/HandheldMuseum/internal/models"
	"gorm.io/gorm"
)

func makeComment(id uint, parentID *uint, userID uint, createdAt time.Time) models.Comment {
	return models.Comment{
		Model:       gorm.Model{ID: id, CreatedAt: createdAt},
		SubjectType: models.SubjectTypeMoment,
		SubjectID:   1,
		UserID:      userID,
		Content:     "comment",
		ParentID:    parentID,
		Status:      models.ReviewStatusApproved,
	}
}

func uintPtr(v uint) *uint { return &v }

func TestBuildCommentTreeGroupsRepliesUnderRoots(t *testing.T) {
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	rows := []models.Comment{
		makeComment(10, nil, 1, base),
		makeComment(11, uintPtr(10), 2, base.Add(time.Minute)),
		makeComment(20, nil, 3, base.Add(2*time.Minute)),
		makeComment(12, uintPtr(10), 3, base.Add(3*time.Minute)),
		makeComment(21, uintPtr(20), 1, base.Add(4*time.Minute)),
	}

	tree := buildCommentTree(rows, nil, nil, nil)

	if len(tree) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(tree))
	}
	if tree[0].CommentID != 10 || tree[1].CommentID != 20 {
		t.Fatalf("roots out of order: %d, %d", tree[0].CommentID, tree[1].CommentID)
	}
	if len(tree[0].Replies) != 2 {
		t.Fatalf("expected 2 replies under root 10, got %d", len(tree[0].Replies))
	}
	if tree[0].Replies[0].CommentID != 11 || tree[0].Replies[1].CommentID != 12 {
		t.Fatalf("replies out of order under root 10: %d, %d", tree[0].Replies[0].CommentID, tree[0].Replies[1].CommentID)
	}
	if len(tree[1].Replies) != 1 || tree[1].Replies[0].CommentID != 21 {
		t.Fatalf("expected reply 21 under root 20")
	}

	// No reply carries nested replies
	for _, root := range tree {
		for _, reply := range root.Replies {
			if len(reply.Replies) != 0 {
				t.Errorf("reply %d has nested replies", reply.CommentID)
			}
		}
	}
}

func TestBuildCommentTreeNoDuplicatesOrWrongDepth(t *testing.T) {
	base := time.Now()
	rows := []models.Comment{
		makeComment(1, nil, 1, base),
		makeComment(2, uintPtr(1), 1, base.Add(time.Second)),
		makeComment(3, uintPtr(1), 2, base.Add(2*time.Second)),
		makeComment(4, nil, 2, base.Add(3*time.Second)),
	}

	tree := buildCommentTree(rows, nil, nil, nil)

	seen := map[uint]int{}
	for _, root := range tree {
		seen[root.CommentID]++
		for _, reply := range root.Replies {
			seen[reply.CommentID]++
		}
	}
	for id, count := range seen {
		if count != 1 {
			t.Errorf("comment %d appears %d times", id, count)
		}
	}
	if len(seen) != len(rows) {
		t.Errorf("expected %d nodes, got %d", len(rows), len(seen))
	}
}

func TestBuildCommentTreeDropsOrphanReplies(t *testing.T) {
	base := time.Now()
	// Reply 11's parent 99 is not in the row set (deleted or unapproved):
	// it must not surface anywhere.
	rows := []models.Comment{
		makeComment(10, nil, 1, base),
		makeComment(11, uintPtr(99), 2, base.Add(time.Second)),
	}

	tree := buildCommentTree(rows, nil, nil, nil)

	if len(tree) != 1 {
		t.Fatalf("expected 1 root, got %d", len(tree))
	}
	if len(tree[0].Replies) != 0 {
		t.Fatalf("orphan reply leaked into root's replies")
	}
}

func TestBuildCommentTreeAttachesMetadata(t *testing.T) {
	base := time.Now()
	rows := []models.Comment{
		makeComment(10, nil, 7, base),
		makeComment(11, uintPtr(10), 8, base.Add(time.Second)),
	}
	names := map[uint]string{7: "alice", 8: "bob"}
	images := map[uint][]models.ImageMeta{10: {{ImageID: 3, Suffix: "png"}}}
	liked := map[uint]bool{11: true}

	tree := buildCommentTree(rows, names, images, liked)

	root := tree[0]
	if root.UserName != "alice" {
		t.Errorf("expected root author alice, got %q", root.UserName)
	}
	if len(root.Images) != 1 || root.Images[0].ImageID != 3 {
		t.Errorf("root images not attached: %+v", root.Images)
	}
	if root.IsLiked {
		t.Errorf("root should not be liked")
	}
	reply := root.Replies[0]
	if reply.UserName != "bob" || !reply.IsLiked {
		t.Errorf("reply metadata wrong: %+v", reply)
	}
	if reply.Images == nil {
		t.Errorf("reply images should be an empty slice, not nil")
	}
}

func TestBuildCommentTreeEmptyInput(t *testing.T) {
	tree := buildCommentTree(nil, nil, nil, nil)
	if len(tree) != 0 {
		t.Fatalf("expected empty tree, got %d roots", len(tree))
	}
}
