package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"fitness_tracker/internal/apperr"
	"fitness_tracker/internal/models"
	"fitness_tracker/internal/service"
)

func TestRankingHandler_Top(t *testing.T) {
	ranking := &mockRanking{top: []models.RankEntry{{Rank: 1, UserID: 7, Score: 50}}}
	r := newTestRouter(&service.Service{Authorization: memberAuth(), Ranking: ranking})

	w := doRequest(r, http.MethodGet, "/api/v1/ranking", "", "valid")
	if w.Code != http.StatusOK || ranking.lastLimit != 0 {
		t.Fatalf("status=%d limit=%d", w.Code, ranking.lastLimit)
	}
	var out struct {
		Count int                `json:"count"`
		Items []models.RankEntry `json:"items"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Count != 1 || out.Items[0].UserID != 7 {
		t.Fatalf("body=%s", w.Body.String())
	}

	w = doRequest(r, http.MethodGet, "/api/v1/ranking?limit=25", "", "valid")
	if w.Code != http.StatusOK || ranking.lastLimit != 25 {
		t.Fatalf("status=%d limit=%d", w.Code, ranking.lastLimit)
	}

	w = doRequest(r, http.MethodGet, "/api/v1/ranking?limit=ten", "", "valid")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad limit status=%d", w.Code)
	}
}

func TestRankingHandler_RankOf(t *testing.T) {
	ranking := &mockRanking{entry: &models.RankEntry{Rank: 4, UserID: 7, Score: 12}}
	r := newTestRouter(&service.Service{Authorization: memberAuth(), Ranking: ranking})

	w := doRequest(r, http.MethodGet, "/api/v1/ranking/me", "", "valid")
	if w.Code != http.StatusOK || ranking.lastUserID != 7 {
		t.Fatalf("me status=%d user=%d", w.Code, ranking.lastUserID)
	}

	w = doRequest(r, http.MethodGet, "/api/v1/ranking/users/11", "", "valid")
	if w.Code != http.StatusOK || ranking.lastUserID != 11 {
		t.Fatalf("user status=%d user=%d", w.Code, ranking.lastUserID)
	}

	ranking.err = apperr.NotFound("user 11 has no score")
	w = doRequest(r, http.MethodGet, "/api/v1/ranking/users/11", "", "valid")
	if w.Code != http.StatusNotFound {
		t.Fatalf("absent status=%d", w.Code)
	}
	if got := decodeError(t, w).Code; got != string(apperr.CodeNotFound) {
		t.Fatalf("code=%q", got)
	}
}
