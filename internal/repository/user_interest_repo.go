package repository

import (
	"Pulse/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserInterestRepo interface {
	ReinforceInterest(ctx context.Context, userID uint64, tag string, increment float64) error
	GetUserInterests(ctx context.Context, userID uint64) ([]*model.UserInterest, error)
	DecayAll(ctx context.Context, factor, pruneThreshold float64) (decayed int64, pruned int64, err error)
}

type userInterestRepoImpl struct {
	db *gorm.DB
}

func NewUserInterestRepository(db *gorm.DB) UserInterestRepo {
	return &userInterestRepoImpl{db: db}
}

// ReinforceInterest 原子累加权重，不存在则以增量为初值插入
func (r *userInterestRepoImpl) ReinforceInterest(ctx context.Context, userID uint64, tag string, increment float64) error {
	interest := model.UserInterest{
		UserID:    userID,
		Tag:       tag,
		Weight:    increment,
		UpdatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "tag"}},
		DoUpdates: clause.Assignments(map[string]any{
			"weight":     gorm.Expr("weight + ?", increment),
			"updated_at": interest.UpdatedAt,
		}),
	}).Create(&interest).Error
}

// GetUserInterests 按权重倒序返回用户的全部兴趣
func (r *userInterestRepoImpl) GetUserInterests(ctx context.Context, userID uint64) ([]*model.UserInterest, error) {
	interests := make([]*model.UserInterest, 0)
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("weight DESC").
		Find(&interests)
	if result.Error != nil {
		return nil, result.Error
	}
	return interests, nil
}

// DecayAll 全表乘衰减系数，再删掉跌破阈值的行。
// 两条集合语句，避免逐行读写
func (r *userInterestRepoImpl) DecayAll(ctx context.Context, factor, pruneThreshold float64) (int64, int64, error) {
	var decayed, pruned int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.UserInterest{}).
			Where("1 = 1").
			Update("weight", gorm.Expr("weight * ?", factor))
		if result.Error != nil {
			return result.Error
		}
		decayed = result.RowsAffected

		result = tx.Where("weight < ?", pruneThreshold).Delete(&model.UserInterest{})
		if result.Error != nil {
			return result.Error
		}
		pruned = result.RowsAffected
		return nil
	})
	return decayed, pruned, err
}
