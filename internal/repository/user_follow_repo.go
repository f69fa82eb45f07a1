package repository

import (
	"Pulse/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserFollowRepo interface {
	SaveFollow(ctx context.Context, follow *model.UserFollow) error
	DeleteFollow(ctx context.Context, followerID, followingID uint64) error
	IsFollowing(ctx context.Context, followerID, followingID uint64) (bool, error)
	ListFollowingIDs(ctx context.Context, followerID uint64) ([]uint64, error)
}

type userFollowRepoImpl struct {
	db *gorm.DB
}

func NewUserFollowRepository(db *gorm.DB) UserFollowRepo {
	return &userFollowRepoImpl{db: db}
}

// SaveFollow 重复同步同一条关注关系时静默忽略
func (r *userFollowRepoImpl) SaveFollow(ctx context.Context, follow *model.UserFollow) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "follower_id"}, {Name: "following_id"}},
		DoNothing: true,
	}).Create(follow).Error
}

// DeleteFollow 取关，删不存在的行不算错误
func (r *userFollowRepoImpl) DeleteFollow(ctx context.Context, followerID, followingID uint64) error {
	return r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&model.UserFollow{}).Error
}

// IsFollowing 观看者是否关注作者
func (r *userFollowRepoImpl) IsFollowing(ctx context.Context, followerID, followingID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.UserFollow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListFollowingIDs 观看者关注的全部用户 ID，Following 流按此过滤
func (r *userFollowRepoImpl) ListFollowingIDs(ctx context.Context, followerID uint64) ([]uint64, error) {
	ids := make([]uint64, 0)
	err := r.db.WithContext(ctx).Model(&model.UserFollow{}).
		Where("follower_id = ?", followerID).
		Pluck("following_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
