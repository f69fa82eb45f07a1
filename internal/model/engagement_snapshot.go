package model

import (
	"time"
)

// EngagementSnapshot 每小时一条的互动计数快照，用于计算增速。
// (post_id, snapshot_at) 唯一保证重复采样幂等
type EngagementSnapshot struct {
	ID         uint64    `gorm:"primaryKey"`
	PostID     uint64    `gorm:"not null;index:idx_post_snapshot,unique"`
	SnapshotAt time.Time `gorm:"not null;index:idx_post_snapshot,unique;column:snapshot_at"`
	Likes      int       `gorm:"not null;default:0"`
	Comments   int       `gorm:"not null;default:0"`
	Bookmarks  int       `gorm:"not null;default:0"`
	Views      int       `gorm:"not null;default:0"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (EngagementSnapshot) TableName() string {
	return "engagement_snapshots"
}
