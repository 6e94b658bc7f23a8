package models

type RankEntry struct {
	Rank   int64   `json:"rank"` // 1-based
	UserID int64   `json:"user_id"`
	Score  float64 `json:"score"`
}
