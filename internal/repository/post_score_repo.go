package repository

import (
	"Pulse/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostScoreRepo interface {
	SaveOrUpdateScore(ctx context.Context, score *model.PostScore) error
	GetScoreByPostID(ctx context.Context, postID uint64) (*model.PostScore, error)
	ListTopScores(ctx context.Context, limit int) ([]*model.PostScore, error)
	ListScoresByPostIDs(ctx context.Context, postIDs []uint64) ([]*model.PostScore, error)
	PruneComputedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type postScoreRepoImpl struct {
	db *gorm.DB
}

func NewPostScoreRepository(db *gorm.DB) PostScoreRepo {
	return &postScoreRepoImpl{db: db}
}

// SaveOrUpdateScore 整行覆盖。重算任务持互斥锁单写，
// 因此 computed_at 天然单调不减
func (r *postScoreRepoImpl) SaveOrUpdateScore(ctx context.Context, score *model.PostScore) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "post_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"score",
			"engagement_score",
			"quality_score",
			"trust_score",
			"decay_score",
			"velocity",
			"computed_at",
		}),
	}).Create(score).Error
}

// GetScoreByPostID 没有记录时返回 nil
func (r *postScoreRepoImpl) GetScoreByPostID(ctx context.Context, postID uint64) (*model.PostScore, error) {
	var score model.PostScore
	err := r.db.WithContext(ctx).Where("post_id = ?", postID).First(&score).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &score, nil
}

// ListTopScores 按分数倒序取前 N，同分按 post_id 升序保证稳定
func (r *postScoreRepoImpl) ListTopScores(ctx context.Context, limit int) ([]*model.PostScore, error) {
	scores := make([]*model.PostScore, 0, limit)
	result := r.db.WithContext(ctx).
		Order("score DESC, post_id ASC").
		Limit(limit).
		Find(&scores)
	if result.Error != nil {
		return nil, result.Error
	}
	return scores, nil
}

// ListScoresByPostIDs 批量取指定帖子的分数
func (r *postScoreRepoImpl) ListScoresByPostIDs(ctx context.Context, postIDs []uint64) ([]*model.PostScore, error) {
	scores := make([]*model.PostScore, 0, len(postIDs))
	if len(postIDs) == 0 {
		return scores, nil
	}
	result := r.db.WithContext(ctx).
		Where("post_id IN ?", postIDs).
		Find(&scores)
	if result.Error != nil {
		return nil, result.Error
	}
	return scores, nil
}

// PruneComputedBefore 清掉长期未重算的分数行（帖子早已退出计算窗口）
func (r *postScoreRepoImpl) PruneComputedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("computed_at < ?", cutoff).
		Delete(&model.PostScore{})
	return result.RowsAffected, result.Error
}
