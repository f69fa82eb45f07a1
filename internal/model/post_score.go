package model

import (
	"time"
)

// PostScore 每帖一行的最新综合分，feed 服务按它排序。
// 每次重算整行覆盖，不留历史；ComputedAt 单调不减
type PostScore struct {
	PostID          uint64    `gorm:"primaryKey"`
	Score           float64   `gorm:"not null;default:0;index:idx_score"`
	EngagementScore float64   `gorm:"not null;default:0"`
	QualityScore    float64   `gorm:"not null;default:1"`
	TrustScore      float64   `gorm:"not null;default:1"`
	DecayScore      float64   `gorm:"not null;default:1"`
	Velocity        float64   `gorm:"not null;default:0"`
	ComputedAt      time.Time `gorm:"not null"`
}

func (PostScore) TableName() string {
	return "post_scores"
}
