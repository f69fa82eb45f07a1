package service

import (
	"Pulse/internal/pkg/consts"
	"Pulse/internal/repository"
	"context"
	log "log/slog"
	"time"
)

type CleanupService interface {
	Purge(ctx context.Context, now time.Time) (int64, error)
}

type cleanupServiceImpl struct {
	snapshotRepo repository.SnapshotRepo
	hashtagRepo  repository.HashtagRepo
	scoreRepo    repository.PostScoreRepo
}

func NewCleanupService(
	snapshotRepo repository.SnapshotRepo,
	hashtagRepo repository.HashtagRepo,
	scoreRepo repository.PostScoreRepo,
) CleanupService {
	return &cleanupServiceImpl{
		snapshotRepo: snapshotRepo,
		hashtagRepo:  hashtagRepo,
		scoreRepo:    scoreRepo,
	}
}

// Purge 滚动删除各表保留窗口外的数据，返回总删除条数。
// 三段互相独立，一段失败不影响已完成的删除
func (s *cleanupServiceImpl) Purge(ctx context.Context, now time.Time) (int64, error) {
	var total int64

	snapshots, err := s.snapshotRepo.PurgeBefore(ctx, now.Add(-consts.SnapshotRetention))
	if err != nil {
		return total, err
	}
	total += snapshots

	mentions, err := s.hashtagRepo.PurgeMentionsBefore(ctx, now.Add(-consts.MentionRetention))
	if err != nil {
		return total, err
	}
	total += mentions

	scores, err := s.scoreRepo.PruneComputedBefore(ctx, now.Add(-consts.ScoreRetention))
	if err != nil {
		return total, err
	}
	total += scores

	log.Info("cleanup finished", "snapshots", snapshots, "mentions", mentions, "scores", scores)
	return total, nil
}
