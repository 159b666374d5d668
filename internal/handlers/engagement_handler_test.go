package handlers

import (
	"fmt"
	"net/http"
	"testing"
)

func TestToggleLikeThenStatus(t *testing.T) {
	env := newTestEnv(t)
	h := NewEngagementHandler(env.likeRepo, env.favoriteRepo, env.subjectRepo)
	user := env.seedUser(t, "alice")
	moment := env.seedMoment(t, user.ID)

	body := fmt.Sprintf(`{"user_id": %d}`, user.ID)
	c, rec := env.jsonRequest(http.MethodPost, "/api/v1/like/1", body,
		[]string{"subject_id"}, []string{fmt.Sprint(moment.ID)})
	if err := h.ToggleLike(c); err != nil {
		t.Fatalf("ToggleLike failed: %v", err)
	}

	var toggle struct {
		LikeCount int  `json:"like_count"`
		IsLiked   bool `json:"is_liked"`
	}
	decodeJSON(t, rec, &toggle)
	if toggle.LikeCount != 1 || !toggle.IsLiked {
		t.Errorf("toggle response wrong: %+v", toggle)
	}

	target := fmt.Sprintf("/api/v1/status/%d?user_id=%d", moment.ID, user.ID)
	c, rec = env.jsonRequest(http.MethodGet, target, "",
		[]string{"subject_id"}, []string{fmt.Sprint(moment.ID)})
	if err := h.GetStatus(c); err != nil {
		t.Fatalf("GetStatus failed: %v", err)
	}

	var status struct {
		LikeCount     int  `json:"like_count"`
		FavoriteCount int  `json:"favorite_count"`
		IsLiked       bool `json:"is_liked"`
		IsFavorited   bool `json:"is_favorited"`
	}
	decodeJSON(t, rec, &status)
	if status.LikeCount != 1 || status.FavoriteCount != 0 || !status.IsLiked || status.IsFavorited {
		t.Errorf("status response wrong: %+v", status)
	}
}

func TestToggleFavoriteMissingSubject(t *testing.T) {
	env := newTestEnv(t)
	h := NewEngagementHandler(env.likeRepo, env.favoriteRepo, env.subjectRepo)
	user := env.seedUser(t, "alice")

	body := fmt.Sprintf(`{"user_id": %d}`, user.ID)
	c, rec := env.jsonRequest(http.MethodPost, "/api/v1/favorite/999", body,
		[]string{"subject_id"}, []string{"999"})
	err := h.ToggleFavorite(c)
	if httpStatus(err, rec) != http.StatusNotFound {
		t.Fatalf("expected 404 for missing subject, got %d (err=%v)", httpStatus(err, rec), err)
	}
}

func TestGetStatusRequiresUserID(t *testing.T) {
	env := newTestEnv(t)
	h := NewEngagementHandler(env.likeRepo, env.favoriteRepo, env.subjectRepo)
	user := env.seedUser(t, "alice")
	moment := env.seedMoment(t, user.ID)

	c, rec := env.jsonRequest(http.MethodGet, "/api/v1/status/1", "",
		[]string{"subject_id"}, []string{fmt.Sprint(moment.ID)})
	err := h.GetStatus(c)
	if httpStatus(err, rec) != http.StatusBadRequest {
		t.Fatalf("expected 400 when user_id is missing, got %d (err=%v)", httpStatus(err, rec), err)
	}
}

func TestStatusUnknownSubjectType(t *testing.T) {
	env := newTestEnv(t)
	h := NewEngagementHandler(env.likeRepo, env.favoriteRepo, env.subjectRepo)
	user := env.seedUser(t, "alice")
	moment := env.seedMoment(t, user.ID)

	target := fmt.Sprintf("/api/v1/status/%d?user_id=%d&subject_type=banana", moment.ID, user.ID)
	c, rec := env.jsonRequest(http.MethodGet, target, "",
		[]string{"subject_id"}, []string{fmt.Sprint(moment.ID)})
	err := h.GetStatus(c)
	if httpStatus(err, rec) != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown subject type, got %d (err=%v)", httpStatus(err, rec), err)
	}
}
