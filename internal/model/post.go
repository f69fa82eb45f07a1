package model

import (
	"time"
)

// Post 内容条目的本地读模型。计数列由互动日志消费者写入，
// 对本子系统的任何任务只读
type Post struct {
	ID             uint64    `gorm:"primaryKey"`
	UserID         uint64    `gorm:"not null;index:idx_user_id" json:"user_id"`
	Title          string    `gorm:"type:varchar(255)" json:"title"`
	Content        string    `gorm:"not null" json:"content"`
	MediaCount     int       `gorm:"not null;default:0" json:"media_count"`
	LikesCount     int       `gorm:"not null;default:0" json:"likes_count"`
	CommentsCount  int       `gorm:"not null;default:0" json:"comments_count"`
	BookmarksCount int       `gorm:"not null;default:0" json:"bookmarks_count"`
	ViewsCount     int       `gorm:"not null;default:0" json:"views_count"`
	IsAnonymous    bool      `gorm:"type:tinyint(1);not null;default:0" json:"is_anonymous"`
	IsDeleted      bool      `gorm:"type:tinyint(1);not null;default:0" json:"is_deleted"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (Post) TableName() string {
	return "posts"
}
