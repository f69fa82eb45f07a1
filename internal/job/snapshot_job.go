package job

import (
	"Pulse/internal/pkg/consts"
	"Pulse/internal/service"
	"context"
	"time"
)

// EngagementSnapshotJob 每小时采一次互动计数快照
type EngagementSnapshotJob struct {
	snapshotSvc service.SnapshotService
}

func NewEngagementSnapshotJob(snapshotSvc service.SnapshotService) *EngagementSnapshotJob {
	return &EngagementSnapshotJob{snapshotSvc: snapshotSvc}
}

func (j *EngagementSnapshotJob) Definition() service.Job {
	return service.Job{
		Name:    consts.JobEngagementSnapshot,
		Spec:    "@every 1h",
		LockTTL: 30 * time.Minute,
		Run:     j.run,
	}
}

func (j *EngagementSnapshotJob) run(ctx context.Context, now time.Time) (int64, error) {
	return j.snapshotSvc.CaptureAll(ctx, now)
}
