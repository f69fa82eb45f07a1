package model

import "time"

// UserProfile 声誉服务同步来的用户画像。作者侧供信任乘数，
// 观看者侧供同专业判断，本子系统只读
type UserProfile struct {
	UserID     uint64    `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	Specialty  string    `gorm:"type:varchar(100)" json:"specialty"`
	IsVerified bool      `gorm:"type:tinyint(1);not null;default:0" json:"is_verified"`
	IsPremium  bool      `gorm:"type:tinyint(1);not null;default:0" json:"is_premium"`
	Level      int       `gorm:"not null;default:0" json:"level"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
