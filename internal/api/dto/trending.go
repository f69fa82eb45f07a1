package dto

// TrendingTopicDTO 热榜上的一个话题
type TrendingTopicDTO struct {
	Tag          string  `json:"tag"`
	Heat         float64 `json:"heat"`
	MentionCount int64   `json:"mention_count"`
}

// TrendingDTO 热榜响应
type TrendingDTO struct {
	ComputedAt string              `json:"computed_at"`
	Topics     []*TrendingTopicDTO `json:"topics"`
}
