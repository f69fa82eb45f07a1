package repository

import (
	"Pulse/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepo interface {
	GetPostByID(ctx context.Context, postID uint64) (*model.Post, error)
	ListCreatedSince(ctx context.Context, since time.Time, lastID uint64, batchSize int) ([]*model.Post, error)
	ListNewest(ctx context.Context, limit int) ([]*model.Post, error)
	ListNewestByAuthors(ctx context.Context, authorIDs []uint64, limit int) ([]*model.Post, error)
	SaveOrUpdatePost(ctx context.Context, post *model.Post) error
	MarkDeleted(ctx context.Context, postID uint64) error
}

type postRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &postRepoImpl{db: db}
}

// GetPostByID 获取单帖，已删除或不存在返回 nil
func (r *postRepoImpl) GetPostByID(ctx context.Context, postID uint64) (*model.Post, error) {
	var post model.Post
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = 0", postID).
		First(&post).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// ListCreatedSince 按主键分批拉取窗口内的活跃帖子，lastID 传 0 表示第一批
func (r *postRepoImpl) ListCreatedSince(ctx context.Context, since time.Time, lastID uint64, batchSize int) ([]*model.Post, error) {
	posts := make([]*model.Post, 0, batchSize)
	result := r.db.WithContext(ctx).
		Where("created_at >= ? AND is_deleted = 0", since).
		Where("id > ?", lastID).
		Order("id ASC").
		Limit(batchSize).
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

// ListNewest 纯时间序候选集
func (r *postRepoImpl) ListNewest(ctx context.Context, limit int) ([]*model.Post, error) {
	posts := make([]*model.Post, 0, limit)
	result := r.db.WithContext(ctx).
		Where("is_deleted = 0").
		Order("created_at DESC").
		Limit(limit).
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

// ListNewestByAuthors 限定作者集合的候选集，关注流用
func (r *postRepoImpl) ListNewestByAuthors(ctx context.Context, authorIDs []uint64, limit int) ([]*model.Post, error) {
	posts := make([]*model.Post, 0, limit)
	if len(authorIDs) == 0 {
		return posts, nil
	}
	result := r.db.WithContext(ctx).
		Where("user_id IN ? AND is_deleted = 0", authorIDs).
		Order("created_at DESC").
		Limit(limit).
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

// SaveOrUpdatePost 同步层 Upsert，主键冲突时覆盖内容与计数
func (r *postRepoImpl) SaveOrUpdatePost(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"user_id",
			"title",
			"content",
			"media_count",
			"likes_count",
			"comments_count",
			"bookmarks_count",
			"views_count",
			"is_anonymous",
			"is_deleted",
			"updated_at",
		}),
	}).Create(post).Error
}

// MarkDeleted 软删除，同时清掉该帖的分数行，避免幽灵条目留在 feed 里
func (r *postRepoImpl) MarkDeleted(ctx context.Context, postID uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Post{}).
			Where("id = ?", postID).
			Update("is_deleted", true).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&model.PostScore{}).Error; err != nil {
			return err
		}
		return tx.Where("post_id = ?", postID).Delete(&model.EngagementSnapshot{}).Error
	})
}
