package dto

// ScoreDTO 单帖分数明细
type ScoreDTO struct {
	PostID          uint64  `json:"post_id"`
	Score           float64 `json:"score"`
	EngagementScore float64 `json:"engagement_score"`
	QualityScore    float64 `json:"quality_score"`
	TrustScore      float64 `json:"trust_score"`
	DecayScore      float64 `json:"decay_score"`
	Velocity        float64 `json:"velocity"`
	PersonalBonus   float64 `json:"personal_bonus"`
	ComputedAt      string  `json:"computed_at"`
}

// FeedItemDTO feed 流中的一条内容
type FeedItemDTO struct {
	PostID    uint64  `json:"post_id"`
	UserID    uint64  `json:"user_id"`
	Title     string  `json:"title"`
	Score     float64 `json:"score"`
	CreatedAt string  `json:"created_at"`
}

// FeedDTO feed 流响应
type FeedDTO struct {
	View  string         `json:"view"`
	Items []*FeedItemDTO `json:"items"`
}
