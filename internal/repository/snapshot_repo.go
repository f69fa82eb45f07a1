package repository

import (
	"Pulse/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SnapshotRepo interface {
	SaveSnapshot(ctx context.Context, snapshot *model.EngagementSnapshot) error
	GetLatestTwo(ctx context.Context, postID uint64) ([]*model.EngagementSnapshot, error)
	PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type snapshotRepoImpl struct {
	db *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) SnapshotRepo {
	return &snapshotRepoImpl{db: db}
}

// SaveSnapshot 同一 (post_id, snapshot_at) 重复采样时覆盖计数，保证任务重跑幂等
func (r *snapshotRepoImpl) SaveSnapshot(ctx context.Context, snapshot *model.EngagementSnapshot) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "post_id"}, {Name: "snapshot_at"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"likes",
			"comments",
			"bookmarks",
			"views",
		}),
	}).Create(snapshot).Error
}

// GetLatestTwo 取该帖最近两条快照，时间倒序。增速计算至少需要两条
func (r *snapshotRepoImpl) GetLatestTwo(ctx context.Context, postID uint64) ([]*model.EngagementSnapshot, error) {
	snapshots := make([]*model.EngagementSnapshot, 0, 2)
	result := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("snapshot_at DESC").
		Limit(2).
		Find(&snapshots)
	if result.Error != nil {
		return nil, result.Error
	}
	return snapshots, nil
}

// PurgeBefore 删除保留窗口外的快照，返回删除条数
func (r *snapshotRepoImpl) PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("snapshot_at < ?", cutoff).
		Delete(&model.EngagementSnapshot{})
	return result.RowsAffected, result.Error
}
