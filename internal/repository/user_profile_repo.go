package repository

import (
	"Pulse/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserProfileRepo interface {
	SaveOrUpdateProfile(ctx context.Context, profile *model.UserProfile) error
	GetProfileByUserID(ctx context.Context, userID uint64) (*model.UserProfile, error)
	GetProfilesByUserIDs(ctx context.Context, userIDs []uint64) (map[uint64]*model.UserProfile, error)
}

type userProfileRepoImpl struct {
	db *gorm.DB
}

func NewUserProfileRepository(db *gorm.DB) UserProfileRepo {
	return &userProfileRepoImpl{db: db}
}

// SaveOrUpdateProfile 声誉服务同步入口，整行覆盖
func (r *userProfileRepoImpl) SaveOrUpdateProfile(ctx context.Context, profile *model.UserProfile) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"specialty",
			"is_verified",
			"is_premium",
			"level",
			"updated_at",
		}),
	}).Create(profile).Error
}

// GetProfileByUserID 没有画像返回 nil，调用方按默认信任处理
func (r *userProfileRepoImpl) GetProfileByUserID(ctx context.Context, userID uint64) (*model.UserProfile, error) {
	var profile model.UserProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// GetProfilesByUserIDs 批量取画像，按 user_id 建索引方便逐帖查作者
func (r *userProfileRepoImpl) GetProfilesByUserIDs(ctx context.Context, userIDs []uint64) (map[uint64]*model.UserProfile, error) {
	profiles := make([]*model.UserProfile, 0, len(userIDs))
	if len(userIDs) == 0 {
		return map[uint64]*model.UserProfile{}, nil
	}
	err := r.db.WithContext(ctx).Where("user_id IN ?", userIDs).Find(&profiles).Error
	if err != nil {
		return nil, err
	}

	indexed := make(map[uint64]*model.UserProfile, len(profiles))
	for _, p := range profiles {
		indexed[p.UserID] = p
	}
	return indexed, nil
}
