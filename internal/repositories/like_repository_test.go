package repositories

import (
	"testing"

	"github.com/BUCT-CS2201/HandheldMuseum/internal/models"
)

func TestToggleLikePairingRestoresState(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresLikeRepository(db)
	user := seedUser(t, db, "alice")
	moment := seedMoment(t, db, user.ID)

	count, liked, err := repo.ToggleLike(models.SubjectTypeMoment, moment.ID, user.ID)
	if err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
	if count != 1 || !liked {
		t.Errorf("after first toggle: count=%d liked=%v", count, liked)
	}

	count, liked, err = repo.ToggleLike(models.SubjectTypeMoment, moment.ID, user.ID)
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if count != 0 || liked {
		t.Errorf("after second toggle: count=%d liked=%v", count, liked)
	}
}

func TestToggleLikeCounterMatchesEvidence(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresLikeRepository(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	moment := seedMoment(t, db, alice.ID)

	sequence := []uint{alice.ID, bob.ID, alice.ID, alice.ID, bob.ID}
	for _, u := range sequence {
		if _, _, err := repo.ToggleLike(models.SubjectTypeMoment, moment.ID, u); err != nil {
			t.Fatalf("toggle failed: %v", err)
		}
	}

	evidence, err := repo.GetLikesCount(models.SubjectTypeMoment, moment.ID)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}

	var momentRow models.Moment
	if err := db.First(&momentRow, moment.ID).Error; err != nil {
		t.Fatalf("failed to reload moment: %v", err)
	}

	if int64(momentRow.LikeCount) != evidence {
		t.Errorf("counter %d disagrees with %d like rows", momentRow.LikeCount, evidence)
	}
	// alice ends liked, bob ends unliked
	if momentRow.LikeCount != 1 {
		t.Errorf("expected like_count 1, got %d", momentRow.LikeCount)
	}
}

func TestToggleLikeMissingSubject(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresLikeRepository(db)
	user := seedUser(t, db, "alice")

	if _, _, err := repo.ToggleLike(models.SubjectTypeMoment, 999, user.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// No orphan like row may survive the rolled-back toggle
	var count int64
	db.Model(&models.Like{}).Count(&count)
	if count != 0 {
		t.Errorf("expected 0 like rows after rollback, got %d", count)
	}
}

func TestToggleLikeAcrossSubjectTypes(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresLikeRepository(db)
	user := seedUser(t, db, "alice")
	moment := seedMoment(t, db, user.ID)

	relic := &models.Relic{Name: "bronze ding", Dynasty: "Shang"}
	if err := db.Create(relic).Error; err != nil {
		t.Fatalf("failed to seed relic: %v", err)
	}

	if _, _, err := repo.ToggleLike(models.SubjectTypeMoment, moment.ID, user.ID); err != nil {
		t.Fatalf("moment toggle failed: %v", err)
	}
	count, liked, err := repo.ToggleLike(models.SubjectTypeRelic, relic.ID, user.ID)
	if err != nil {
		t.Fatalf("relic toggle failed: %v", err)
	}
	if count != 1 || !liked {
		t.Errorf("relic toggle: count=%d liked=%v", count, liked)
	}

	// The two targets keep independent counters
	var relicRow models.Relic
	db.First(&relicRow, relic.ID)
	var momentRow models.Moment
	db.First(&momentRow, moment.ID)
	if relicRow.LikeCount != 1 || momentRow.LikeCount != 1 {
		t.Errorf("counters crossed: relic=%d moment=%d", relicRow.LikeCount, momentRow.LikeCount)
	}
}

func TestToggleFavoriteIndependentOfLike(t *testing.T) {
	db := newTestDB(t)
	likeRepo := NewPostgresLikeRepository(db)
	favRepo := NewPostgresFavoriteRepository(db)
	user := seedUser(t, db, "alice")
	moment := seedMoment(t, db, user.ID)

	if _, _, err := likeRepo.ToggleLike(models.SubjectTypeMoment, moment.ID, user.ID); err != nil {
		t.Fatalf("like toggle failed: %v", err)
	}
	count, favorited, err := favRepo.ToggleFavorite(models.SubjectTypeMoment, moment.ID, user.ID)
	if err != nil {
		t.Fatalf("favorite toggle failed: %v", err)
	}
	if count != 1 || !favorited {
		t.Errorf("favorite toggle: count=%d favorited=%v", count, favorited)
	}

	// Removing the favorite must not touch the like counter
	if _, _, err := favRepo.ToggleFavorite(models.SubjectTypeMoment, moment.ID, user.ID); err != nil {
		t.Fatalf("favorite untoggle failed: %v", err)
	}
	var momentRow models.Moment
	db.First(&momentRow, moment.ID)
	if momentRow.LikeCount != 1 || momentRow.FavoriteCount != 0 {
		t.Errorf("counters wrong: like=%d favorite=%d", momentRow.LikeCount, momentRow.FavoriteCount)
	}
}

func TestSubjectRepositoryCounters(t *testing.T) {
	db := newTestDB(t)
	subjectRepo := NewPostgresSubjectRepository(db)
	likeRepo := NewPostgresLikeRepository(db)
	user := seedUser(t, db, "alice")
	moment := seedMoment(t, db, user.ID)

	if _, _, err := likeRepo.ToggleLike(models.SubjectTypeMoment, moment.ID, user.ID); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	likeCount, favoriteCount, err := subjectRepo.GetCounters(models.SubjectTypeMoment, moment.ID)
	if err != nil {
		t.Fatalf("counters failed: %v", err)
	}
	if likeCount != 1 || favoriteCount != 0 {
		t.Errorf("counters wrong: like=%d favorite=%d", likeCount, favoriteCount)
	}

	if _, _, err := subjectRepo.GetCounters(models.SubjectTypeMoment, 999); err != ErrNotFound {
		t.Errorf("expected ErrNotFound for missing subject, got %v", err)
	}

	exists, err := subjectRepo.SubjectExists(models.SubjectTypeMoment, moment.ID)
	if err != nil || !exists {
		t.Errorf("expected subject to exist: exists=%v err=%v", exists, err)
	}
	if _, err := subjectRepo.SubjectExists("banana", 1); err == nil {
		t.Errorf("expected error for unknown subject type")
	}
}
