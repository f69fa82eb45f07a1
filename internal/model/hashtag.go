package model

import "time"

// Hashtag 话题标签。大小写不敏感（统一存小写），从不硬删除：
// 过气的标签靠衰减自然跌出热榜
type Hashtag struct {
	ID            uint64    `gorm:"primaryKey"`
	Name          string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_hashtag_name"`
	MentionCount  int64     `gorm:"not null;default:0"`
	LastMentionAt time.Time `gorm:"not null"`
	CreatedAt     time.Time
}

func (Hashtag) TableName() string {
	return "hashtags"
}

// HashtagMention 单次提及记录，热度分按提及时间衰减求和。
// 只追加，超出保留窗口的由清理任务删除
type HashtagMention struct {
	ID          uint64    `gorm:"primaryKey"`
	HashtagID   uint64    `gorm:"not null;index:idx_mention_hashtag"`
	PostID      uint64    `gorm:"not null"`
	MentionedAt time.Time `gorm:"not null;index:idx_mention_time"`
}

func (HashtagMention) TableName() string {
	return "hashtag_mentions"
}
