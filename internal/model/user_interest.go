package model

import "time"

// UserInterest 用户对单个话题的亲和度。互动时增强、按日衰减，
// 跌破阈值后删除，存储有界
type UserInterest struct {
	UserID    uint64    `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	Tag       string    `gorm:"primaryKey;type:varchar(50)" json:"tag"`
	Weight    float64   `gorm:"not null;default:0" json:"weight"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UserInterest) TableName() string {
	return "user_interests"
}
