package service

import (
	"Pulse/internal/model"
	"context"
	"testing"
	"time"
)

func TestPurgeRemovesExpiredRows(t *testing.T) {
	now := time.Now()
	snapshots := newFakeSnapshotRepo()
	hashtags := newFakeHashtagRepo(&model.Hashtag{ID: 1, Name: "btc"})
	scores := newFakePostScoreRepo()

	// 窗口内外各放一条
	_ = snapshots.SaveSnapshot(context.Background(), &model.EngagementSnapshot{
		PostID: 1, SnapshotAt: now.Add(-8 * 24 * time.Hour),
	})
	_ = snapshots.SaveSnapshot(context.Background(), &model.EngagementSnapshot{
		PostID: 1, SnapshotAt: now.Add(-time.Hour),
	})
	_ = hashtags.RecordMention(context.Background(), 1, 10, now.Add(-8*24*time.Hour))
	_ = hashtags.RecordMention(context.Background(), 1, 11, now.Add(-time.Hour))
	_ = scores.SaveOrUpdateScore(context.Background(), &model.PostScore{
		PostID: 1, ComputedAt: now.Add(-31 * 24 * time.Hour),
	})
	_ = scores.SaveOrUpdateScore(context.Background(), &model.PostScore{
		PostID: 2, ComputedAt: now,
	})

	svc := NewCleanupService(snapshots, hashtags, scores)
	total, err := svc.Purge(context.Background(), now)
	if err != nil {
		t.Fatalf("Purge: %v", err)
	}
	if total != 3 {
		t.Fatalf("total purged = %d, want 3", total)
	}

	if len(snapshots.snapshots[1]) != 1 {
		t.Errorf("snapshots left = %d, want 1", len(snapshots.snapshots[1]))
	}
	if len(hashtags.mentions) != 1 {
		t.Errorf("mentions left = %d, want 1", len(hashtags.mentions))
	}
	if scores.scores[1] != nil {
		t.Error("stale score row should be pruned")
	}
	if scores.scores[2] == nil {
		t.Error("fresh score row should survive")
	}
}

func TestPurgeNothingToDo(t *testing.T) {
	svc := NewCleanupService(newFakeSnapshotRepo(), newFakeHashtagRepo(), newFakePostScoreRepo())
	total, err := svc.Purge(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("Purge: %v", err)
	}
	if total != 0 {
		t.Fatalf("total purged = %d, want 0", total)
	}
}
