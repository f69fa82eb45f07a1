package repository

import (
	"Pulse/internal/model"
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

type HashtagRepo interface {
	GetOrCreate(ctx context.Context, name string, now time.Time) (*model.Hashtag, error)
	RecordMention(ctx context.Context, hashtagID, postID uint64, mentionedAt time.Time) error
	ListMentionsSince(ctx context.Context, since time.Time) ([]*model.HashtagMention, error)
	GetHashtagsByIDs(ctx context.Context, ids []uint64) ([]*model.Hashtag, error)
	PurgeMentionsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type hashtagRepoImpl struct {
	db *gorm.DB
}

func NewHashtagRepository(db *gorm.DB) HashtagRepo {
	return &hashtagRepoImpl{db: db}
}

// GetOrCreate 名称已统一为小写。并发插入撞唯一键时回查一次
func (r *hashtagRepoImpl) GetOrCreate(ctx context.Context, name string, now time.Time) (*model.Hashtag, error) {
	var tag model.Hashtag
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&tag).Error
	if err == nil {
		return &tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tag = model.Hashtag{Name: name, LastMentionAt: now}
	err = r.db.WithContext(ctx).Create(&tag).Error
	if err == nil {
		return &tag, nil
	}
	if isDuplicateError(err) {
		if err = r.db.WithContext(ctx).Where("name = ?", name).First(&tag).Error; err != nil {
			return nil, err
		}
		return &tag, nil
	}
	return nil, err
}

func isDuplicateError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	return false
}

// RecordMention 追加提及记录并同步累计数与最近提及时间
func (r *hashtagRepoImpl) RecordMention(ctx context.Context, hashtagID, postID uint64, mentionedAt time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		mention := model.HashtagMention{
			HashtagID:   hashtagID,
			PostID:      postID,
			MentionedAt: mentionedAt,
		}
		if err := tx.Create(&mention).Error; err != nil {
			return err
		}
		return tx.Model(&model.Hashtag{}).
			Where("id = ?", hashtagID).
			Updates(map[string]any{
				"mention_count":   gorm.Expr("mention_count + 1"),
				"last_mention_at": mentionedAt,
			}).Error
	})
}

// ListMentionsSince 热榜计算窗口内的全部提及
func (r *hashtagRepoImpl) ListMentionsSince(ctx context.Context, since time.Time) ([]*model.HashtagMention, error) {
	mentions := make([]*model.HashtagMention, 0)
	result := r.db.WithContext(ctx).
		Where("mentioned_at >= ?", since).
		Find(&mentions)
	if result.Error != nil {
		return nil, result.Error
	}
	return mentions, nil
}

// GetHashtagsByIDs 批量回查标签名
func (r *hashtagRepoImpl) GetHashtagsByIDs(ctx context.Context, ids []uint64) ([]*model.Hashtag, error) {
	tags := make([]*model.Hashtag, 0, len(ids))
	if len(ids) == 0 {
		return tags, nil
	}
	result := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&tags)
	if result.Error != nil {
		return nil, result.Error
	}
	return tags, nil
}

// PurgeMentionsBefore 删除窗口外的提及记录，标签本体永不删除
func (r *hashtagRepoImpl) PurgeMentionsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("mentioned_at < ?", cutoff).
		Delete(&model.HashtagMention{})
	return result.RowsAffected, result.Error
}
