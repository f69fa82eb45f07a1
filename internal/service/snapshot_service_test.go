package service

import (
	"Pulse/internal/model"
	"Pulse/internal/pkg/util"
	"context"
	"testing"
	"time"
)

func TestCaptureAllSamplesActivePosts(t *testing.T) {
	now := time.Now()
	posts := newFakePostRepo(
		&model.Post{ID: 1, LikesCount: 3, ViewsCount: 40, CreatedAt: now.Add(-2 * time.Hour)},
		&model.Post{ID: 2, CommentsCount: 1, CreatedAt: now.Add(-30 * time.Hour)},
	)
	snapshots := newFakeSnapshotRepo()
	svc := NewSnapshotService(posts, snapshots)

	captured, err := svc.CaptureAll(context.Background(), now)
	if err != nil {
		t.Fatalf("CaptureAll: %v", err)
	}
	if captured != 2 {
		t.Fatalf("captured = %d, want 2", captured)
	}

	list, _ := snapshots.GetLatestTwo(context.Background(), 1)
	if len(list) != 1 {
		t.Fatalf("post 1 snapshots = %d, want 1", len(list))
	}
	if got := list[0].Likes; got != 3 {
		t.Errorf("snapshot likes = %d, want 3", got)
	}
	if want := util.TruncToHour(now); !list[0].SnapshotAt.Equal(want) {
		t.Errorf("snapshot at = %v, want %v", list[0].SnapshotAt, want)
	}
}

func TestCaptureAllSkipsStalePosts(t *testing.T) {
	now := time.Now()
	posts := newFakePostRepo(
		&model.Post{ID: 1, CreatedAt: now.Add(-72 * time.Hour)},
	)
	snapshots := newFakeSnapshotRepo()
	svc := NewSnapshotService(posts, snapshots)

	captured, err := svc.CaptureAll(context.Background(), now)
	if err != nil {
		t.Fatalf("CaptureAll: %v", err)
	}
	if captured != 0 {
		t.Fatalf("captured = %d, want 0", captured)
	}
}

// 同一小时内重跑只覆盖已有快照，不产生新行
func TestCaptureAllIdempotentWithinHour(t *testing.T) {
	now := time.Now()
	posts := newFakePostRepo(
		&model.Post{ID: 1, LikesCount: 3, CreatedAt: now.Add(-time.Hour)},
	)
	snapshots := newFakeSnapshotRepo()
	svc := NewSnapshotService(posts, snapshots)

	if _, err := svc.CaptureAll(context.Background(), now); err != nil {
		t.Fatalf("first CaptureAll: %v", err)
	}
	posts.posts[1].LikesCount = 9
	if _, err := svc.CaptureAll(context.Background(), now.Add(10*time.Minute)); err != nil {
		t.Fatalf("second CaptureAll: %v", err)
	}

	list := snapshots.snapshots[1]
	if len(list) != 1 {
		t.Fatalf("snapshot rows = %d, want 1", len(list))
	}
	if got := list[0].Likes; got != 9 {
		t.Errorf("snapshot likes after rerun = %d, want 9", got)
	}
}
