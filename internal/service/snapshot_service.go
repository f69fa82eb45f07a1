package service

import (
	"Pulse/internal/model"
	"Pulse/internal/pkg/consts"
	"Pulse/internal/pkg/util"
	"Pulse/internal/repository"
	"context"
	log "log/slog"
	"time"
)

// SnapshotBatchSize 快照任务每批拉取的帖子数
const SnapshotBatchSize = 500

type SnapshotService interface {
	CaptureAll(ctx context.Context, now time.Time) (int64, error)
}

type snapshotServiceImpl struct {
	postRepo     repository.PostRepo
	snapshotRepo repository.SnapshotRepo
}

func NewSnapshotService(postRepo repository.PostRepo, snapshotRepo repository.SnapshotRepo) SnapshotService {
	return &snapshotServiceImpl{
		postRepo:     postRepo,
		snapshotRepo: snapshotRepo,
	}
}

// CaptureAll 给采样窗口内的每个活跃帖子记一条互动计数快照。
// 采样时间对齐到整点，同一小时内重跑只覆盖不新增。
// 单帖失败只记日志跳过
func (s *snapshotServiceImpl) CaptureAll(ctx context.Context, now time.Time) (int64, error) {
	since := now.Add(-consts.SnapshotLookback)
	snapshotAt := util.TruncToHour(now)

	var (
		captured int64
		lastID   uint64
	)
	for {
		posts, err := s.postRepo.ListCreatedSince(ctx, since, lastID, SnapshotBatchSize)
		if err != nil {
			return captured, err
		}
		if len(posts) == 0 {
			break
		}

		for _, post := range posts {
			lastID = post.ID
			snapshot := &model.EngagementSnapshot{
				PostID:     post.ID,
				SnapshotAt: snapshotAt,
				Likes:      post.LikesCount,
				Comments:   post.CommentsCount,
				Bookmarks:  post.BookmarksCount,
				Views:      post.ViewsCount,
			}
			if err = s.snapshotRepo.SaveSnapshot(ctx, snapshot); err != nil {
				log.Warn("skip post during snapshot", "post_id", post.ID, "err", err)
				continue
			}
			captured++
		}

		if len(posts) < SnapshotBatchSize {
			break
		}
	}
	return captured, nil
}
